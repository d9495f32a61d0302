package masa

import (
	"github.com/tidwall/gjson"
)

// Live search argument types understood by the scraper source.
const (
	SearchByQuery       = "searchbyquery"
	SearchByFullArchive = "searchbyfullarchive"
)

// Indexed search kinds. The kind selects the endpoint path segment.
const (
	KindSimilarity = "similarity"
	KindHybrid     = "hybrid"
)

// Keyword operators accepted by the indexed and hybrid endpoints.
const (
	OperatorAnd = "and"
	OperatorOr  = "or"
)

// Job status values reported by the live-search status endpoint. Anything
// other than done/error/failed counts as still in progress.
const (
	StatusPending = "pending"
	StatusDone    = "done"
	StatusError   = "error"
	StatusFailed  = "failed"
)

type liveSearchRequest struct {
	Type      string              `json:"type"`
	Arguments liveSearchArguments `json:"arguments"`
}

type liveSearchArguments struct {
	Type       string `json:"type"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type submitResponse struct {
	UUID  string `json:"uuid"`
	Error string `json:"error,omitempty"`
}

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// IndexedRequest describes a synchronous search against the pre-built index.
type IndexedRequest struct {
	Query           string
	Kind            string // defaults to KindSimilarity
	Keywords        []string
	KeywordOperator string // defaults to OperatorAnd when keywords are set
	MaxResults      int
}

type indexedPayload struct {
	Query           string   `json:"query"`
	MaxResults      int      `json:"max_results"`
	Keywords        []string `json:"keywords,omitempty"`
	KeywordOperator string   `json:"keyword_operator,omitempty"`
}

// HybridRequest combines a semantic and a full-text sub-query with weights.
type HybridRequest struct {
	SimilarityQuery  string
	TextQuery        string
	SimilarityWeight float64
	TextWeight       float64
	Keywords         []string
	KeywordOperator  string
	MaxResults       int
}

type weightedQuery struct {
	Query  string  `json:"query"`
	Weight float64 `json:"weight"`
}

type hybridPayload struct {
	SimilarityQuery weightedQuery `json:"similarity_query"`
	TextQuery       weightedQuery `json:"text_query"`
	MaxResults      int           `json:"max_results"`
	Keywords        []string      `json:"keywords,omitempty"`
	KeywordOperator string        `json:"keyword_operator,omitempty"`
}

// Item is a single content unit returned by the provider. The field set is
// not stable across data sources, so the raw JSON object is kept as-is and
// read through gjson accessors.
type Item []byte

// UnmarshalJSON stores the raw object bytes
func (it *Item) UnmarshalJSON(data []byte) error {
	*it = append((*it)[:0], data...)
	return nil
}

// MarshalJSON echoes the raw object bytes back out
func (it Item) MarshalJSON() ([]byte, error) {
	if len(it) == 0 {
		return []byte("null"), nil
	}
	return it, nil
}

// Content returns the item's Content field. The second return reports
// whether the field is present at all; an empty string with true means the
// provider sent an empty post body.
func (it Item) Content() (string, bool) {
	r := gjson.GetBytes(it, "Content")
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}

// Field reads an arbitrary path from the item's metadata
func (it Item) Field(path string) gjson.Result {
	return gjson.GetBytes(it, path)
}
