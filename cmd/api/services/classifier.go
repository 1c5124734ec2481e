package services

import (
	"context"
	"fmt"

	"movie-review/cmd/api/clients/sentimentclient"
	"movie-review/cmd/api/sentiment"
	"movie-review/config"
)

// NewClassifier 는 sentiment.provider 설정에 따라 분류기 구현을 고른다.
func NewClassifier(ctx context.Context, cfg config.SentimentConfig) (sentiment.Classifier, error) {
	switch cfg.Provider {
	case config.SentimentProviderHTTP, "":
		return sentimentclient.New(cfg), nil
	case config.SentimentProviderGemini:
		gemini, err := sentiment.NewGeminiClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	case config.SentimentProviderVader:
		return sentiment.NewVaderClassifier(), nil
	default:
		return nil, fmt.Errorf("unsupported sentiment provider: %q", cfg.Provider)
	}
}
