package services

import (
	"context"
	"net/http"
	"strings"

	"movie-review/cmd/api/clients/youtubeclient"
	"movie-review/cmd/api/dto"
	"movie-review/cmd/internal/logger"
)

const (
	defaultYouTubeSearchMax = 10
	maxYouTubeSearchMax     = 50
)

// YouTubeService 는 /youtube/* 엔드포인트를 담당한다.
// client 가 nil 이면 YOUTUBE_API_KEY 가 없는 상태다.
type YouTubeService struct {
	client       *youtubeclient.Client
	defaultLimit int
}

func NewYouTubeService(client *youtubeclient.Client, defaultLimit int) *YouTubeService {
	if defaultLimit <= 0 {
		defaultLimit = 200
	}
	return &YouTubeService{client: client, defaultLimit: defaultLimit}
}

// ClampSearchMax 는 max 를 [1,50] 으로 맞추고, 0 이하이면 기본값 10 을 쓴다.
func ClampSearchMax(max int) int {
	switch {
	case max <= 0:
		return defaultYouTubeSearchMax
	case max > maxYouTubeSearchMax:
		return maxYouTubeSearchMax
	default:
		return max
	}
}

func (s *YouTubeService) Search(ctx context.Context, query string, max int) (dto.YouTubeSearchResponseDTO, *APIError) {
	query = strings.TrimSpace(query)
	if query == "" {
		return dto.YouTubeSearchResponseDTO{}, newBadRequest("query is required")
	}
	if s.client == nil {
		return dto.YouTubeSearchResponseDTO{}, missingYouTubeKeyError()
	}

	videos, err := s.client.SearchVideos(ctx, query, ClampSearchMax(max))
	if err != nil {
		apiErr := normalizeYouTubeError(err, msgYouTubeSearchFailed)
		logAPIError("youtube search failed", apiErr, logger.Fields{"query": query})
		return dto.YouTubeSearchResponseDTO{}, apiErr
	}

	out := dto.YouTubeSearchResponseDTO{Results: make([]dto.YouTubeVideoDTO, 0, len(videos))}
	for _, v := range videos {
		thumbs := make(map[string]dto.ThumbnailDTO, len(v.Thumbnails))
		for name, t := range v.Thumbnails {
			thumbs[name] = dto.ThumbnailDTO{URL: t.URL, Width: t.Width, Height: t.Height}
		}
		out.Results = append(out.Results, dto.YouTubeVideoDTO{
			VideoID:      v.VideoID,
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			PublishedAt:  v.PublishedAt,
			Thumbnails:   thumbs,
		})
	}
	return out, nil
}

// Comments 는 limit 이 0 이하이면 설정된 기본값(200)을 사용한다.
func (s *YouTubeService) Comments(ctx context.Context, videoID string, limit int) (dto.YouTubeCommentsResponseDTO, *APIError) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return dto.YouTubeCommentsResponseDTO{}, newBadRequest("videoId is required")
	}
	if s.client == nil {
		return dto.YouTubeCommentsResponseDTO{}, missingYouTubeKeyError()
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	comments, err := s.client.CommentThreads(ctx, videoID, limit)
	if err != nil {
		apiErr := normalizeYouTubeError(err, msgYouTubeCommentsFailed)
		logAPIError("youtube comments failed", apiErr, logger.Fields{"video_id": videoID})
		return dto.YouTubeCommentsResponseDTO{}, apiErr
	}

	out := dto.YouTubeCommentsResponseDTO{
		Source:   "youtube",
		VideoID:  videoID,
		Count:    len(comments),
		Comments: make([]dto.YouTubeCommentDTO, 0, len(comments)),
	}
	for _, c := range comments {
		out.Comments = append(out.Comments, dto.YouTubeCommentDTO{
			CommentID:   c.CommentID,
			Text:        c.Text,
			Author:      c.Author,
			LikeCount:   c.LikeCount,
			PublishedAt: c.PublishedAt,
			ReplyCount:  c.ReplyCount,
		})
	}
	return out, nil
}

// Health 는 키가 있는지 확인하고, videoId 가 주어지면 videos API 로 실제 조회까지 해 본다.
// YouTube 호출 실패는 200 응답의 ok=false 로 표현한다.
func (s *YouTubeService) Health(ctx context.Context, videoID string) (dto.YouTubeHealthResponseDTO, *APIError) {
	if s.client == nil {
		return dto.YouTubeHealthResponseDTO{}, missingYouTubeKeyError()
	}

	out := dto.YouTubeHealthResponseDTO{Source: "youtube"}
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		out.OK = true
		out.Note = "No videoId provided; API key present"
		return out, nil
	}
	out.VideoID = &videoID

	found, err := s.client.VideoExists(ctx, videoID)
	if err != nil {
		apiErr := normalizeYouTubeError(err, msgYouTubeHealthFailed)
		logAPIError("youtube health check failed", apiErr, logger.Fields{"video_id": videoID})
		out.OK = false
		out.Error = msgYouTubeHealthFailed
		// 응답에는 사유 코드만 싣는다. 상세 메시지는 위 로그에 남는다.
		if httpErr, ok := asYouTubeHTTPError(err); ok {
			out.Status = httpErr.StatusCode
			if httpErr.Reason != "" {
				out.Error = httpErr.Reason
			}
		}
		return out, nil
	}

	out.OK = true
	out.Found = &found
	out.Status = http.StatusOK
	return out, nil
}
