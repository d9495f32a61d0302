package nlp

// Sentiment labels. Positive/negative are thresholded on polarity at ±0.1;
// Unknown is reserved for analyzers that can fail on a given text.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
	LabelUnknown  = "unknown"
)

// Sentiment is the analysis result for a single text. Polarity is the
// signed sentiment strength in [-1, 1]; Subjectivity is the degree of
// opinion vs. fact in [0, 1].
type Sentiment struct {
	Label        string  `json:"sentiment"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Text         string  `json:"text"`
}

// Analyzer is the sentiment/topic capability the aggregation layer builds
// on. Implementations must be stateless pure functions over the text so the
// concrete algorithm is swappable without touching aggregation logic.
type Analyzer interface {
	// Sentiment classifies one text
	Sentiment(text string) Sentiment

	// Topics extracts up to maxTopics topic strings from one text.
	// Hashtags take priority; other extracted phrases fill the remainder,
	// with duplicates across the two sources removed.
	Topics(text string, maxTopics int) []string
}

// LabelFor maps a polarity score to its sentiment label
func LabelFor(polarity float64) string {
	switch {
	case polarity > 0.1:
		return LabelPositive
	case polarity < -0.1:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// SentimentBatch analyzes a batch of texts in order
func SentimentBatch(a Analyzer, texts []string) []Sentiment {
	results := make([]Sentiment, 0, len(texts))
	for _, text := range texts {
		results = append(results, a.Sentiment(text))
	}
	return results
}
