package services

import (
	"context"
	"time"

	"movie-review/cmd/api/dto"
	"movie-review/cmd/api/sentiment"
	"movie-review/config"
)

// HealthService 는 자격 증명 존재 여부와 분류기 상태를 보고한다.
type HealthService struct {
	cfg        config.AppConfig
	classifier sentiment.Classifier
	now        func() time.Time
}

func NewHealthService(cfg config.AppConfig, classifier sentiment.Classifier) *HealthService {
	return &HealthService{cfg: cfg, classifier: classifier, now: time.Now}
}

// Check 는 항상 200 으로 응답할 수 있는 결과를 만든다. 분류기 장애는 sentiment.ok=false 로 표현한다.
func (s *HealthService) Check(ctx context.Context) dto.HealthResponseDTO {
	out := dto.HealthResponseDTO{
		Service: s.cfg.ServiceName,
		Env: dto.HealthEnvDTO{
			TMDBConfigured:    s.cfg.TMDBConfigured(),
			YouTubeConfigured: s.cfg.YouTubeConfigured(),
		},
		Sentiment: dto.SentimentHealthDTO{OK: false, Status: "unknown"},
		Timestamp: s.now().UTC(),
	}
	if s.classifier == nil {
		return out
	}
	out.Sentiment.Provider = s.classifier.Provider()

	checker, ok := s.classifier.(sentiment.HealthChecker)
	if !ok {
		// 로컬/관리형 분류기는 별도 프로브가 없다.
		out.Sentiment.OK = true
		out.Sentiment.Status = "ok"
		return out
	}

	status, err := checker.Health(ctx)
	out.Sentiment.Status = status.Value()
	out.Sentiment.OK = err == nil
	return out
}
