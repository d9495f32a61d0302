package kol

import (
	"github.com/kolsense/kolsense/internal/masa"
	"github.com/kolsense/kolsense/internal/nlp"
)

// Search type names accepted on the wire
const (
	SearchTypeLive    = "live"
	SearchTypeIndexed = "indexed"
	SearchTypeHybrid  = "hybrid"
)

// SearchParams describes one content search. Pointer fields distinguish
// "absent" from a zero value so defaults apply only when the caller said
// nothing.
type SearchParams struct {
	Query            string
	SearchType       string // live, indexed (default), hybrid
	MaxResults       *int
	Keywords         []string
	KeywordOperator  string
	KOLUsername      string
	TextQuery        string
	SimilarityWeight *float64
	TextWeight       *float64
}

// AnalyzeParams drives kol.sentiment and kol.topics. Exactly one of Text
// (single analysis) or Query (search-then-analyze) must be present.
type AnalyzeParams struct {
	Text            *string
	Query           *string
	SearchType      string
	MaxResults      *int
	Keywords        []string
	KeywordOperator string
	KOLUsername     string
	MaxTopics       *int
}

// InsightsParams drives kol.insights
type InsightsParams struct {
	Username   string
	Query      string
	SearchType string
	MaxResults *int
}

// TrendsParams drives kol.trends
type TrendsParams struct {
	Usernames        []string
	Query            string
	SearchType       string
	MaxResultsPerKOL *int
	MaxTrends        *int
}

// SearchResult echoes the effective search parameters alongside the raw
// provider items.
type SearchResult struct {
	Query       string      `json:"query"`
	SearchType  string      `json:"search_type"`
	MaxResults  int         `json:"max_results"`
	KOLUsername string      `json:"kol_username,omitempty"`
	Results     []masa.Item `json:"results"`
	ResultCount int         `json:"result_count"`
}

// TextSentiment is the single-text analysis result
type TextSentiment struct {
	Text           string        `json:"text"`
	Sentiment      nlp.Sentiment `json:"sentiment"`
	SingleAnalysis bool          `json:"single_analysis"`
}

// QuerySentiment is the search-then-analyze sentiment result. ResultCount
// is the number of items that carried a Content field, not the raw item
// count.
type QuerySentiment struct {
	Query            string          `json:"query"`
	KOLUsername      string          `json:"kol_username,omitempty"`
	SentimentResults []nlp.Sentiment `json:"sentiment_results"`
	Distribution     Distribution    `json:"sentiment_distribution"`
	ResultCount      int             `json:"result_count"`
	SingleAnalysis   bool            `json:"single_analysis"`
}

// TextTopics is the single-text topic extraction result
type TextTopics struct {
	Text           string   `json:"text"`
	Topics         []string `json:"topics"`
	TopicCount     int      `json:"topic_count"`
	SingleAnalysis bool     `json:"single_analysis"`
}

// QueryTopics is the search-then-extract topic result
type QueryTopics struct {
	Query          string         `json:"query"`
	KOLUsername    string         `json:"kol_username,omitempty"`
	TopTopics      []TopicCount   `json:"top_topics"`
	AllTopics      map[string]int `json:"all_topics"`
	ResultCount    int            `json:"result_count"`
	SingleAnalysis bool           `json:"single_analysis"`
}

// ContentAnalysis is one recent post with its per-item analysis
type ContentAnalysis struct {
	Text      string        `json:"text"`
	Sentiment nlp.Sentiment `json:"sentiment"`
	Topics    []string      `json:"topics"`
}

// Insights is the comprehensive single-KOL report
type Insights struct {
	Username      string            `json:"username"`
	Query         string            `json:"query"`
	ContentCount  int               `json:"content_count,omitempty"`
	Distribution  *Distribution     `json:"sentiment_distribution,omitempty"`
	TopTopics     []TopicCount      `json:"top_topics,omitempty"`
	RecentContent []ContentAnalysis `json:"recent_content,omitempty"`
	Error         string            `json:"error,omitempty"`
	Success       bool              `json:"success"`
}

// KOLTrend is one username's slice of a trends report. A failed pipeline
// run leaves only Error set; a run that found no content sets Error with
// ContentCount zero.
type KOLTrend struct {
	ContentCount int           `json:"content_count"`
	Topics       []string      `json:"topics,omitempty"`
	Distribution *Distribution `json:"sentiment_distribution,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// Trends is the cross-KOL trends report
type Trends struct {
	Usernames        []string             `json:"usernames"`
	Query            string               `json:"query"`
	TopTrends        []TopicCount         `json:"top_trends"`
	KOLCount         int                  `json:"kol_count"`
	AnalyzedCount    int                  `json:"analyzed_count"`
	OverallSentiment Distribution         `json:"overall_sentiment"`
	KOLResults       map[string]*KOLTrend `json:"kol_results"`
	Success          bool                 `json:"success"`
}
