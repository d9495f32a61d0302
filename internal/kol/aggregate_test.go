package kol

import (
	"testing"

	"github.com/kolsense/kolsense/internal/nlp"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDistribution_Empty(t *testing.T) {
	d := ClassifyDistribution(nil)
	assert.Equal(t, Distribution{}, d)

	d = ClassifyDistribution([]nlp.Sentiment{})
	assert.Equal(t, Distribution{}, d)
}

func TestClassifyDistribution_Counts(t *testing.T) {
	results := []nlp.Sentiment{
		{Label: nlp.LabelPositive, Polarity: 0.8, Subjectivity: 0.9},
		{Label: nlp.LabelPositive, Polarity: 0.4, Subjectivity: 0.5},
		{Label: nlp.LabelNegative, Polarity: -0.6, Subjectivity: 0.8},
		{Label: nlp.LabelNeutral, Polarity: 0.0, Subjectivity: 0.2},
	}

	d := ClassifyDistribution(results)

	assert.Equal(t, 2, d.Positive)
	assert.Equal(t, 1, d.Negative)
	assert.Equal(t, 1, d.Neutral)
	assert.InDelta(t, 50.0, d.PositivePercentage, 1e-9)
	assert.InDelta(t, 25.0, d.NegativePercentage, 1e-9)
	assert.InDelta(t, 25.0, d.NeutralPercentage, 1e-9)
	assert.InDelta(t, 0.15, d.AveragePolarity, 1e-9)
	assert.InDelta(t, 0.6, d.AverageSubjectivity, 1e-9)

	// Percentages always sum to 100 when the batch is non-empty.
	assert.InDelta(t, 100.0, d.PositivePercentage+d.NeutralPercentage+d.NegativePercentage, 1e-9)
}

func TestClassifyDistribution_UnknownCountsAsNeutral(t *testing.T) {
	d := ClassifyDistribution([]nlp.Sentiment{{Label: nlp.LabelUnknown}})
	assert.Equal(t, 1, d.Neutral)
	assert.InDelta(t, 100.0, d.NeutralPercentage, 1e-9)
}

func TestTopicTally_Ranked(t *testing.T) {
	tally := NewTopicTally()
	tally.Add("ai", "web3", "ai", "rust")
	tally.Add("web3", "ai")

	ranked := tally.Ranked()
	assert.Equal(t, []TopicCount{
		{Topic: "ai", Count: 3},
		{Topic: "web3", Count: 2},
		{Topic: "rust", Count: 1},
	}, ranked)
}

func TestTopicTally_TiesKeepFirstSeenOrder(t *testing.T) {
	tally := NewTopicTally()
	tally.Add("zebra", "apple", "mango")
	tally.Add("zebra", "apple", "mango")

	// All tied at 2; ranking must preserve accumulation order, not sort
	// lexicographically.
	ranked := tally.Ranked()
	assert.Equal(t, []TopicCount{
		{Topic: "zebra", Count: 2},
		{Topic: "apple", Count: 2},
		{Topic: "mango", Count: 2},
	}, ranked)
}

func TestTopicTally_Top(t *testing.T) {
	tally := NewTopicTally()
	tally.Add("a", "a", "b", "c")

	top := tally.Top(2)
	assert.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Topic)

	assert.Len(t, tally.Top(10), 3)
	assert.Empty(t, NewTopicTally().Top(5))
}
