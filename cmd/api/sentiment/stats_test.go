package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(pos, neg, neu int) []Label {
	out := make([]Label, 0, pos+neg+neu)
	for i := 0; i < pos; i++ {
		out = append(out, Positive)
	}
	for i := 0; i < neg; i++ {
		out = append(out, Negative)
	}
	for i := 0; i < neu; i++ {
		out = append(out, Neutral)
	}
	return out
}

func TestTallyEmpty(t *testing.T) {
	assert.Nil(t, Tally(nil))
	assert.Equal(t, SummaryNoData, DeriveSummary(nil))
	assert.Equal(t, SummaryNoData, DeriveSummary(&Stats{}))
}

func TestTallyCountsAndPercentages(t *testing.T) {
	testCases := []struct {
		pos, neg, neu int
	}{
		{1, 0, 0},
		{1, 1, 1},
		{6, 1, 3},
		{2, 3, 2},
		{7, 0, 4},
		{100, 33, 1},
	}

	for _, testCase := range testCases {
		stats := Tally(labels(testCase.pos, testCase.neg, testCase.neu))
		require.NotNil(t, stats)

		total := testCase.pos + testCase.neg + testCase.neu
		assert.Equal(t, total, stats.Total())
		assert.Equal(t, testCase.pos, stats.Positive)
		assert.Equal(t, testCase.neg, stats.Negative)
		assert.Equal(t, testCase.neu, stats.Neutral)

		sum := stats.PositivePercent + stats.NegativePercent + stats.NeutralPercent
		assert.Less(t, math.Abs(sum-100), 0.1, "percent sum %v", sum)
	}
}

func TestTallyRoundsToTwoDecimals(t *testing.T) {
	stats := Tally(labels(1, 1, 1))
	require.NotNil(t, stats)
	assert.Equal(t, 33.33, stats.PositivePercent)
	assert.Equal(t, 33.33, stats.NegativePercent)
	assert.Equal(t, 33.33, stats.NeutralPercent)

	stats = Tally(labels(2, 1, 0))
	require.NotNil(t, stats)
	assert.Equal(t, 66.67, stats.PositivePercent)
}

func TestDeriveSummary(t *testing.T) {
	testCases := []struct {
		name          string
		pos, neg, neu int
		want          Summary
	}{
		{name: "positive at override threshold", pos: 6, neg: 1, neu: 3, want: SummaryPositive},
		{name: "positive strict majority", pos: 5, neg: 4, neu: 1, want: SummaryPositive},
		{name: "tie between positive and negative", pos: 4, neg: 4, neu: 2, want: SummaryMixed},
		{name: "three way tie", pos: 1, neg: 1, neu: 1, want: SummaryMixed},
		{name: "negative strict majority", pos: 3, neg: 5, neu: 2, want: SummaryNegative},
		{name: "negative override", pos: 2, neg: 6, neu: 2, want: SummaryNegative},
		{name: "neutral strict majority", pos: 2, neg: 3, neu: 5, want: SummaryNeutral},
		{name: "positive override beats neutral", pos: 3, neg: 0, neu: 2, want: SummaryPositive},
		{name: "tie between neutral and positive", pos: 4, neg: 2, neu: 4, want: SummaryMixed},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			stats := Tally(labels(testCase.pos, testCase.neg, testCase.neu))
			assert.Equal(t, testCase.want, DeriveSummary(stats))
		})
	}
}
