package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/dto"
	"movie-review/cmd/api/preprocess"
	"movie-review/cmd/api/sentiment"
	"movie-review/cmd/api/trace"
	"movie-review/cmd/internal/logger"
	"movie-review/events"
	"movie-review/models"
)

const (
	sourceLabelTMDB        = "TMDB"
	sourceLabelTMDBYouTube = "TMDB + YouTube"
)

// AnalysisRecorder 는 분석 실행 기록을 저장한다(Mongo analysis_logs).
type AnalysisRecorder interface {
	Record(ctx context.Context, log models.AnalysisLog) error
}

// AnalysisEventPublisher 는 분석 완료 이벤트를 내보낸다(Kafka).
type AnalysisEventPublisher interface {
	PublishMovieAnalyzed(ctx context.Context, evt events.MovieAnalyzedEvent) error
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, models.AnalysisLog) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishMovieAnalyzed(context.Context, events.MovieAnalyzedEvent) error {
	return nil
}

// AnalysisServiceConfig 는 파이프라인 설정이다.
type AnalysisServiceConfig struct {
	ServiceName       string
	ClassifierTimeout time.Duration
	PreviewSize       int
}

// AnalysisService 는 수집 → 언어 필터 → 일괄 분류 → 집계 파이프라인을 실행한다.
type AnalysisService struct {
	collector  *ReviewCollector
	classifier sentiment.Classifier
	recorder   AnalysisRecorder
	publisher  AnalysisEventPublisher
	cfg        AnalysisServiceConfig
}

func NewAnalysisService(collector *ReviewCollector, classifier sentiment.Classifier, cfg AnalysisServiceConfig) *AnalysisService {
	if cfg.ClassifierTimeout <= 0 {
		cfg.ClassifierTimeout = 60 * time.Second
	}
	if cfg.PreviewSize <= 0 {
		cfg.PreviewSize = 5
	}
	return &AnalysisService{
		collector:  collector,
		classifier: classifier,
		recorder:   nopRecorder{},
		publisher:  nopPublisher{},
		cfg:        cfg,
	}
}

// WithRecorder / WithPublisher 는 선택 구성요소다. nil 이면 무시한다.
func (s *AnalysisService) WithRecorder(r AnalysisRecorder) *AnalysisService {
	if r != nil {
		s.recorder = r
	}
	return s
}

func (s *AnalysisService) WithPublisher(p AnalysisEventPublisher) *AnalysisService {
	if p != nil {
		s.publisher = p
	}
	return s
}

// Analyze 는 rawMovieID 를 검증한 뒤 전체 파이프라인을 실행한다.
func (s *AnalysisService) Analyze(ctx context.Context, rawMovieID string) (dto.AnalysisResponseDTO, *APIError) {
	startedAt := time.Now()
	movieID, err := tmdbclient.ParseMovieID(rawMovieID)
	if err != nil {
		return dto.AnalysisResponseDTO{}, normalizeTMDBError(err)
	}

	logEntry := models.AnalysisLog{
		RequestID:   trace.RequestIDFromContext(ctx),
		MovieID:     movieID,
		Provider:    s.classifier.Provider(),
		RequestedAt: startedAt,
	}

	result, apiErr := s.analyze(ctx, movieID, &logEntry)
	logEntry.CompletedAt = time.Now()
	logEntry.DurationMs = logEntry.CompletedAt.Sub(startedAt).Milliseconds()
	if apiErr != nil {
		msg := apiErr.Error()
		logEntry.ErrorMessage = &msg
	}
	s.record(ctx, logEntry)

	if apiErr != nil {
		return dto.AnalysisResponseDTO{}, apiErr
	}
	return result, nil
}

func (s *AnalysisService) analyze(ctx context.Context, movieID int, logEntry *models.AnalysisLog) (dto.AnalysisResponseDTO, *APIError) {
	collection, err := s.collector.Collect(ctx, movieID)
	if err != nil {
		apiErr := normalizeAnalysisError(err)
		logAPIError("review collection failed", apiErr, logger.Fields{"movie_id": movieID})
		return dto.AnalysisResponseDTO{}, apiErr
	}
	logEntry.Title = collection.Title
	logEntry.VideoID = collection.Video.Content.VideoID

	if videoErr := collection.Video.Err; videoErr != nil {
		msg := videoErr.Error()
		logEntry.VideoError = &msg
		logger.WarnWithFields("youtube comments unavailable, continuing with tmdb reviews only", logger.Fields{
			"movie_id":   movieID,
			"query":      collection.Video.Content.Query,
			"video_id":   collection.Video.Content.VideoID,
			"error":      msg,
			"request_id": logEntry.RequestID,
		})
	}

	reviews := filterLanguage(collection.Reviews)
	var comments []ReviewItem
	if collection.Video.Err == nil {
		comments = filterLanguage(collection.Video.Content.Comments)
	}
	logEntry.TMDBReviews = len(reviews)
	logEntry.YouTubeComments = len(comments)

	source := sourceLabelTMDB
	if len(comments) > 0 {
		source = sourceLabelTMDBYouTube
	}
	logEntry.Source = source

	out := dto.AnalysisResponseDTO{
		Source:          source,
		MovieID:         movieID,
		Title:           collection.Title,
		Reviews:         []dto.LabeledReviewDTO{},
		TMDBReviews:     []dto.LabeledReviewDTO{},
		YouTubeComments: []dto.LabeledReviewDTO{},
		YouTube:         youTubeDiagnostics(collection.Video),
	}

	items := make([]ReviewItem, 0, len(reviews)+len(comments))
	items = append(items, reviews...)
	items = append(items, comments...)

	if len(items) == 0 {
		out.Summary = string(sentiment.SummaryNoData)
		out.Stats = struct{}{}
		logEntry.Summary = out.Summary
		return out, nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = preprocess.Clean(item.Content)
	}

	classifyCtx, cancel := context.WithTimeout(ctx, s.cfg.ClassifierTimeout)
	defer cancel()
	preds, err := sentiment.ClassifyChecked(classifyCtx, s.classifier, texts)
	if err != nil {
		apiErr := normalizeAnalysisError(err)
		logAPIError("sentiment classification failed", apiErr, logger.Fields{
			"movie_id": movieID,
			"texts":    len(texts),
			"provider": s.classifier.Provider(),
		})
		return dto.AnalysisResponseDTO{}, apiErr
	}

	labels := make([]sentiment.Label, len(preds))
	labeled := make([]dto.LabeledReviewDTO, len(items))
	for i, item := range items {
		labels[i] = preds[i].Label
		labeled[i] = dto.LabeledReviewDTO{
			Source:     string(item.Source),
			Author:     item.Author,
			Content:    item.Content,
			Sentiment:  preds[i].Label,
			Confidence: preds[i].Confidence,
		}
		if item.Source == SourceYouTube {
			out.YouTubeComments = append(out.YouTubeComments, labeled[i])
		} else {
			out.TMDBReviews = append(out.TMDBReviews, labeled[i])
		}
	}

	stats := sentiment.Tally(labels)
	summary := sentiment.DeriveSummary(stats)

	out.TotalReviews = stats.Total()
	out.Summary = string(summary)
	out.Stats = *stats
	out.Reviews = labeled[:min(s.cfg.PreviewSize, len(labeled))]

	logEntry.TotalReviews = out.TotalReviews
	logEntry.Summary = out.Summary
	logEntry.Positive = stats.Positive
	logEntry.Negative = stats.Negative
	logEntry.Neutral = stats.Neutral

	s.publish(ctx, out, *stats, logEntry)
	return out, nil
}

func filterLanguage(items []ReviewItem) []ReviewItem {
	out := make([]ReviewItem, 0, len(items))
	for _, item := range items {
		if preprocess.IsLikelyEnglish(item.Content) {
			out = append(out, item)
		}
	}
	return out
}

func youTubeDiagnostics(v VideoResult) dto.YouTubeDiagnosticsDTO {
	d := dto.YouTubeDiagnosticsDTO{
		VideoID: v.Content.VideoID,
		Query:   v.Content.Query,
	}
	if v.Err != nil {
		d.Error = v.Err.Error()
	}
	return d
}

// normalizeAnalysisError 는 분석 파이프라인의 에러를 API 응답으로 바꾼다.
// 분류기 연결 거부만 502 로 구분하고 나머지는 500 이다.
func normalizeAnalysisError(err error) *APIError {
	switch {
	case errors.Is(err, sentiment.ErrClassifierUnavailable):
		return &APIError{StatusCode: http.StatusBadGateway, ErrorCode: "sentiment_service_unavailable", Message: msgSentimentUnavailable, Cause: err}
	case errors.Is(err, sentiment.ErrClassifierMismatch):
		return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "sentiment_result_mismatch", Message: msgAnalyzeFailed, Cause: err}
	case errors.Is(err, tmdbclient.ErrMissingAPIKey),
		errors.Is(err, tmdbclient.ErrInvalidMovieID),
		errors.Is(err, tmdbclient.ErrMovieNotFound):
		return normalizeTMDBError(err)
	}
	return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "analyze_failed", Message: msgAnalyzeFailed, Cause: err}
}

// record / publish 실패는 응답에 영향을 주지 않는다.
func (s *AnalysisService) record(ctx context.Context, entry models.AnalysisLog) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.recorder.Record(ctx, entry); err != nil {
		logger.ErrorWithFields("failed to record analysis log", logger.Fields{
			"movie_id": entry.MovieID,
			"error":    err.Error(),
		})
	}
}

func (s *AnalysisService) publish(ctx context.Context, out dto.AnalysisResponseDTO, stats sentiment.Stats, entry *models.AnalysisLog) {
	evt := events.MovieAnalyzedEvent{
		BaseEvent:       events.NewBaseEvent(events.MovieAnalyzed, s.cfg.ServiceName),
		RequestID:       entry.RequestID,
		MovieID:         out.MovieID,
		Title:           out.Title,
		ContentSource:   out.Source,
		TotalReviews:    out.TotalReviews,
		Summary:         out.Summary,
		Positive:        stats.Positive,
		Negative:        stats.Negative,
		Neutral:         stats.Neutral,
		PositivePercent: stats.PositivePercent,
		NegativePercent: stats.NegativePercent,
		NeutralPercent:  stats.NeutralPercent,
		Provider:        entry.Provider,
		VideoID:         out.YouTube.VideoID,
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.publisher.PublishMovieAnalyzed(ctx, evt); err != nil {
		logger.ErrorWithFields("failed to publish movie analyzed event", logger.Fields{
			"movie_id": out.MovieID,
			"event_id": evt.ID,
			"error":    err.Error(),
		})
	}
}
