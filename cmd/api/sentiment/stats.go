package sentiment

import "math"

// Summary 는 집계 결과 전체에 대한 한 단어 판정이다.
type Summary string

const (
	SummaryPositive Summary = "positive"
	SummaryNegative Summary = "negative"
	SummaryNeutral  Summary = "neutral"
	SummaryMixed    Summary = "mixed"
	SummaryNoData   Summary = "no data"
)

// 이 비율 이상이면 다수결 결과와 상관없이 해당 판정으로 덮어쓴다.
const overridePercent = 60

type Stats struct {
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Neutral         int     `json:"neutral"`
	PositivePercent float64 `json:"positivePercent"`
	NegativePercent float64 `json:"negativePercent"`
	NeutralPercent  float64 `json:"neutralPercent"`
}

func (s Stats) Total() int {
	return s.Positive + s.Negative + s.Neutral
}

// Tally 는 라벨 개수를 세고 소수 둘째 자리로 반올림한 비율을 계산한다.
// 빈 입력이면 nil 을 반환한다.
func Tally(labels []Label) *Stats {
	if len(labels) == 0 {
		return nil
	}

	var s Stats
	for _, l := range labels {
		switch l {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
	}

	total := float64(len(labels))
	s.PositivePercent = round2(float64(s.Positive) / total * 100)
	s.NegativePercent = round2(float64(s.Negative) / total * 100)
	s.NeutralPercent = round2(float64(s.Neutral) / total * 100)
	return &s
}

// DeriveSummary 규칙 (뒤 규칙이 앞 규칙을 덮어쓴다)
//  1. 기본값 mixed
//  2. positive / negative / neutral 중 나머지 둘보다 엄격히 큰 쪽
//  3. positivePercent >= 60 이면 positive, 아니고 negativePercent >= 60 이면 negative
func DeriveSummary(s *Stats) Summary {
	if s == nil || s.Total() == 0 {
		return SummaryNoData
	}

	summary := SummaryMixed
	if s.Positive > s.Negative && s.Positive > s.Neutral {
		summary = SummaryPositive
	}
	if s.Negative > s.Positive && s.Negative > s.Neutral {
		summary = SummaryNegative
	}
	if s.Neutral > s.Positive && s.Neutral > s.Negative {
		summary = SummaryNeutral
	}

	if s.PositivePercent >= overridePercent {
		summary = SummaryPositive
	} else if s.NegativePercent >= overridePercent {
		summary = SummaryNegative
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
