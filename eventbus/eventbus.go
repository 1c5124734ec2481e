package eventbus

import (
	"context"
	"encoding/json"
)

// Topic은 토픽 이름을 관리합니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher 인터페이스는 이벤트 발행의 추상화를 정의합니다.
// 이 서비스는 분석 결과를 내보내기만 하고 구독하지 않습니다.
type Publisher interface {
	Publish(ctx context.Context, topic Topic, event Event) error
	Close()
}
