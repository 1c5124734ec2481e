package preprocess

import "strings"

const (
	minLetterRatio   = 0.3
	maxNonLatinRatio = 0.2
)

// IsLikelyEnglish 는 문자 비율만 보는 가벼운 판별기다.
//   - letterRatio: 전체 rune 중 [A-Za-z] 비율
//   - nonLatinRatio: 전체 rune 중 0x7F 보다 큰 rune 비율
//
// letterRatio >= 0.3 이고 nonLatinRatio <= 0.2 이면 통과한다. 빈 문자열은 거부한다.
func IsLikelyEnglish(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	var total, letters, nonLatin int
	for _, r := range text {
		total++
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		case r > 0x7F:
			nonLatin++
		}
	}

	letterRatio := float64(letters) / float64(total)
	nonLatinRatio := float64(nonLatin) / float64(total)
	return letterRatio >= minLetterRatio && nonLatinRatio <= maxNonLatinRatio
}

// RuneLen 은 최소 길이 필터에서 사용하는 글자 수다.
func RuneLen(text string) int {
	return len([]rune(text))
}
