package services

import (
	"errors"
	"net/http"

	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/clients/youtubeclient"
)

// 클라이언트에 노출되는 에러 메시지. 상세 원인은 로그로만 남긴다.
const (
	msgMissingTMDBKey        = "Missing TMDB_API_KEY"
	msgMissingYouTubeKey     = "Missing YOUTUBE_API_KEY"
	msgTMDBError             = "tmdb error"
	msgYouTubeSearchFailed   = "Failed to search youtube videos"
	msgYouTubeCommentsFailed = "Failed to fetch youtube comments"
	msgYouTubeHealthFailed   = "YouTube API check failed"
	msgAnalyzeFailed         = "analyze failed"
	msgSentimentUnavailable  = "sentiment service unavailable"
	msgMovieNotFound         = "movie not found"
	msgInvalidMovieID        = "invalid movie id"
)

// APIError 는 서비스 계층이 핸들러에 돌려주는 에러다.
// Message 는 응답 바디에, ErrorCode 와 Cause 는 로그에 사용된다.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e == nil {
		return "internal_error"
	}
	if e.Cause != nil {
		return e.ErrorCode + ": " + e.Cause.Error()
	}
	return e.ErrorCode
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newBadRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "invalid_request", Message: message}
}

func missingTMDBKeyError() *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "missing_tmdb_api_key",
		Message:    msgMissingTMDBKey,
		Cause:      tmdbclient.ErrMissingAPIKey,
	}
}

func missingYouTubeKeyError() *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "missing_youtube_api_key",
		Message:    msgMissingYouTubeKey,
		Cause:      youtubeclient.ErrMissingAPIKey,
	}
}

// normalizeTMDBError 는 TMDB 호출 실패를 API 응답으로 바꾼다.
// 상태 코드와 status_message 는 응답에 싣지 않는다.
func normalizeTMDBError(err error) *APIError {
	switch {
	case errors.Is(err, tmdbclient.ErrMissingAPIKey):
		return missingTMDBKeyError()
	case errors.Is(err, tmdbclient.ErrInvalidMovieID):
		return &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "invalid_movie_id", Message: msgInvalidMovieID, Cause: err}
	case errors.Is(err, tmdbclient.ErrMovieNotFound):
		return &APIError{StatusCode: http.StatusNotFound, ErrorCode: "movie_not_found", Message: msgMovieNotFound, Cause: err}
	}
	return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "tmdb_failed", Message: msgTMDBError, Cause: err}
}

// normalizeYouTubeError 는 YouTube 엔드포인트 전용이다. 분석 파이프라인에서는 실패를 흡수한다.
func normalizeYouTubeError(err error, message string) *APIError {
	if errors.Is(err, youtubeclient.ErrMissingAPIKey) {
		return missingYouTubeKeyError()
	}
	errorCode := "youtube_failed"
	var httpErr *youtubeclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.Reason != "" {
		errorCode = "youtube_" + httpErr.Reason
	}
	return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: errorCode, Message: message, Cause: err}
}

func asYouTubeHTTPError(err error) (*youtubeclient.HTTPError, bool) {
	var httpErr *youtubeclient.HTTPError
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}
