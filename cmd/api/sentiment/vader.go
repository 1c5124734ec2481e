package sentiment

import (
	"context"
	"math"

	"github.com/jonreiter/govader"
)

const (
	vaderPositiveThreshold = 0.05
	vaderNegativeThreshold = -0.05
)

// VaderClassifier 는 외부 서비스 없이 VADER 사전으로 분류한다.
// Confidence 는 compound 점수의 절댓값이다.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Provider() string { return "vader" }

func (v *VaderClassifier) Classify(ctx context.Context, texts []string) ([]Prediction, error) {
	preds := make([]Prediction, 0, len(texts))
	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		compound := v.analyzer.PolarityScores(text).Compound
		preds = append(preds, Prediction{
			Label:      vaderLabel(compound),
			Confidence: math.Abs(compound),
		})
	}
	return preds, nil
}

func vaderLabel(compound float64) Label {
	switch {
	case compound >= vaderPositiveThreshold:
		return Positive
	case compound <= vaderNegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
