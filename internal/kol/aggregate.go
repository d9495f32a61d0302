package kol

import (
	"sort"

	"github.com/kolsense/kolsense/internal/nlp"
)

// Distribution summarizes sentiment over a batch: counts and percentages
// per label plus mean polarity/subjectivity. It is derived state,
// recomputed on every call.
type Distribution struct {
	Positive            int     `json:"positive"`
	Neutral             int     `json:"neutral"`
	Negative            int     `json:"negative"`
	PositivePercentage  float64 `json:"positive_percentage"`
	NeutralPercentage   float64 `json:"neutral_percentage"`
	NegativePercentage  float64 `json:"negative_percentage"`
	AveragePolarity     float64 `json:"average_polarity"`
	AverageSubjectivity float64 `json:"average_subjectivity"`
}

// ClassifyDistribution aggregates a batch of sentiment results. An empty
// batch yields the all-zero distribution rather than an error.
func ClassifyDistribution(results []nlp.Sentiment) Distribution {
	var d Distribution
	if len(results) == 0 {
		return d
	}

	var polaritySum, subjectivitySum float64
	for _, r := range results {
		switch r.Label {
		case nlp.LabelPositive:
			d.Positive++
		case nlp.LabelNegative:
			d.Negative++
		default:
			d.Neutral++
		}
		polaritySum += r.Polarity
		subjectivitySum += r.Subjectivity
	}

	total := float64(len(results))
	d.PositivePercentage = float64(d.Positive) / total * 100
	d.NeutralPercentage = float64(d.Neutral) / total * 100
	d.NegativePercentage = float64(d.Negative) / total * 100
	d.AveragePolarity = polaritySum / total
	d.AverageSubjectivity = subjectivitySum / total
	return d
}

// TopicCount is one ranked topic with its occurrence count
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TopicTally accumulates topic occurrences while remembering first-seen
// order, which breaks ties when ranking.
type TopicTally struct {
	counts map[string]int
	order  []string
}

// NewTopicTally creates an empty tally
func NewTopicTally() *TopicTally {
	return &TopicTally{counts: make(map[string]int)}
}

// Add records one occurrence of each given topic
func (t *TopicTally) Add(topics ...string) {
	for _, topic := range topics {
		if _, ok := t.counts[topic]; !ok {
			t.order = append(t.order, topic)
		}
		t.counts[topic]++
	}
}

// Len returns the number of distinct topics
func (t *TopicTally) Len() int {
	return len(t.order)
}

// Counts returns the topic -> count mapping
func (t *TopicTally) Counts() map[string]int {
	return t.counts
}

// Ranked returns topics sorted by count descending. Topics with equal
// counts keep their first-seen order.
func (t *TopicTally) Ranked() []TopicCount {
	ranked := make([]TopicCount, 0, len(t.order))
	for _, topic := range t.order {
		ranked = append(ranked, TopicCount{Topic: topic, Count: t.counts[topic]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Top returns the n highest-ranked topics
func (t *TopicTally) Top(n int) []TopicCount {
	ranked := t.Ranked()
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
