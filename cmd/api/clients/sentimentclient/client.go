package sentimentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
	"time"

	"movie-review/cmd/api/httpclient"
	"movie-review/cmd/api/sentiment"
	"movie-review/config"
)

// Client 는 외부 감성 분류 서비스(POST /predict_batch, GET /health)를 호출한다.
type Client struct {
	base          *httpclient.BaseClient
	healthTimeout time.Duration
}

type PredictBatchRequest struct {
	Texts []string `json:"texts"`
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sentiment-service request failed: status=%d body=%s", e.StatusCode, e.Body)
}

func New(cfg config.SentimentConfig) *Client {
	healthTimeout := cfg.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = 2 * time.Second
	}
	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	return &Client{
		base:          httpclient.NewBaseClientWithClient(httpClient, cfg.BaseURL),
		healthTimeout: healthTimeout,
	}
}

func (c *Client) Provider() string { return config.SentimentProviderHTTP }

// Classify 는 모든 텍스트를 한 번의 요청으로 보낸다. 재시도하지 않는다.
func (c *Client) Classify(ctx context.Context, texts []string) ([]sentiment.Prediction, error) {
	buf, err := json.Marshal(PredictBatchRequest{Texts: texts})
	if err != nil {
		return nil, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/predict_batch", nil, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	const maxBodySize = 5 * 1024 * 1024
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return nil, fmt.Errorf("sentiment-service response read failed: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out []sentiment.RawPrediction
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("sentiment-service decode: %w", err)
	}
	return sentiment.ToPredictions(out), nil
}

// Health 는 GET /health 의 응답 코드를 돌려준다.
// 연결 실패 시 Reason 은 "ECONNREFUSED" 또는 "unreachable" 이다.
func (c *Client) Health(ctx context.Context) (sentiment.HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return sentiment.HealthStatus{Reason: healthUnreachable}, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return sentiment.HealthStatus{Reason: healthConnRefused}, err
		}
		return sentiment.HealthStatus{Reason: healthUnreachable}, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	status := sentiment.HealthStatus{HTTPStatus: resp.StatusCode}
	if resp.StatusCode != http.StatusOK {
		return status, &HTTPError{StatusCode: resp.StatusCode}
	}
	return status, nil
}

const (
	healthConnRefused = "ECONNREFUSED"
	healthUnreachable = "unreachable"
)

func classifyTransportError(err error) error {
	if isConnectionRefused(err) {
		return fmt.Errorf("%w: %w", sentiment.ErrClassifierUnavailable, err)
	}
	return err
}

func isConnectionRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}
