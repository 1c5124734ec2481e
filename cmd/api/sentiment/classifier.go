package sentiment

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrClassifierUnavailable 는 분류기에 연결 자체가 거부된 경우다. API 에서는 502 로 응답한다.
	ErrClassifierUnavailable = errors.New("sentiment classifier unavailable")
	// ErrClassifierMismatch 는 입력 개수와 분류 결과 개수가 다를 때 반환된다.
	ErrClassifierMismatch = errors.New("sentiment classifier result count mismatch")
)

// Prediction 은 입력 텍스트 하나에 대한 분류 결과다. Confidence 는 [0,1] 범위다.
type Prediction struct {
	Label      Label
	Confidence float64
}

// Classifier 는 텍스트 묶음을 한 번에 분류한다.
// 결과는 입력과 같은 순서, 같은 개수여야 한다.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]Prediction, error)
	Provider() string
}

// HealthStatus 는 원격 분류기 프로브 결과다.
// 응답을 받았으면 HTTPStatus 가, 받지 못했으면 Reason(ECONNREFUSED, unreachable) 이 채워진다.
type HealthStatus struct {
	HTTPStatus int
	Reason     string
}

// Value 는 응답 코드가 있으면 숫자, 없으면 사유 문자열을 돌려준다.
func (h HealthStatus) Value() any {
	if h.HTTPStatus > 0 {
		return h.HTTPStatus
	}
	return h.Reason
}

// HealthChecker 는 원격 분류기의 상태를 확인할 수 있는 구현이 추가로 제공한다.
type HealthChecker interface {
	Health(ctx context.Context) (HealthStatus, error)
}

// ClassifyChecked 는 분류 결과 개수를 입력과 비교한다.
func ClassifyChecked(ctx context.Context, c Classifier, texts []string) ([]Prediction, error) {
	preds, err := c.Classify(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(preds) != len(texts) {
		return nil, fmt.Errorf("%w: sent %d texts, got %d results", ErrClassifierMismatch, len(texts), len(preds))
	}
	for i := range preds {
		preds[i].Confidence = clampConfidence(preds[i].Confidence)
	}
	return preds, nil
}

func clampConfidence(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
