package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiSystemInstruction = `
You are a sentiment classifier for movie reviews and video comments.
The user message is a JSON array of strings. Classify each string independently.
The response MUST be a JSON array with exactly one object per input string, in the same order:

  {"label": "positive" | "negative" | "neutral", "max_prob": <number between 0 and 1>}

Constraints:
- Do NOT wrap the JSON output in a markdown code block.
- Do NOT add, drop, merge or reorder items.
- The response should contain ONLY the raw JSON array.
`

var ErrMissingGeminiAPIKey = errors.New("sentiment: missing GEMINI_API_KEY")

// GeminiClassifier 는 Google GenAI 모델에 한 번의 GenerateContent 호출로 묶음 분류를 맡긴다.
type GeminiClassifier struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClassifier(ctx context.Context, apiKey, modelName string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &GeminiClassifier{client: client, modelName: modelName}, nil
}

func (g *GeminiClassifier) Provider() string { return "gemini" }

func (g *GeminiClassifier) Classify(ctx context.Context, texts []string) ([]Prediction, error) {
	if len(texts) == 0 {
		return []Prediction{}, nil
	}
	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, err
	}

	result, err := g.client.Models.GenerateContent(
		ctx,
		g.modelName,
		genai.Text(string(payload)),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: geminiSystemInstruction}}},
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("gemini returned empty result")
	}

	return parseRawPredictions(result.Text())
}

// RawPrediction 은 HTTP 분류 서비스와 Gemini 가 공통으로 쓰는 응답 항목 형태다.
type RawPrediction struct {
	Label   string  `json:"label"`
	MaxProb float64 `json:"max_prob"`
}

func parseRawPredictions(body string) ([]Prediction, error) {
	body = strings.TrimSpace(body)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	var raw []RawPrediction
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}
	return ToPredictions(raw), nil
}

// ToPredictions 는 응답 라벨을 Label 로 정규화한다.
func ToPredictions(raw []RawPrediction) []Prediction {
	preds := make([]Prediction, len(raw))
	for i, r := range raw {
		preds[i] = Prediction{Label: NormalizeLabel(r.Label), Confidence: r.MaxProb}
	}
	return preds
}
