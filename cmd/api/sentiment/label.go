package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Label 은 분류 결과의 닫힌 집합이다. 분류기 응답 문자열은 NormalizeLabel 을 통해서만 Label 이 된다.
type Label int

const (
	Neutral Label = iota
	Positive
	Negative
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Neutral:
		return "neutral"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Label) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = NormalizeLabel(raw)
	return nil
}

// NormalizeLabel 은 대소문자를 구분하지 않고 "positive" / "negative" 만 인식한다.
// 그 외 값(LABEL_1, mixed, 빈 문자열 등)은 모두 Neutral 이다.
func NormalizeLabel(raw string) Label {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive":
		return Positive
	case "negative":
		return Negative
	default:
		return Neutral
	}
}
