package kol

import (
	"context"
	"strings"

	"github.com/kolsense/kolsense/internal/masa"
	"github.com/kolsense/kolsense/internal/nlp"
	apperrors "github.com/kolsense/kolsense/internal/pkg/errors"
	"github.com/kolsense/kolsense/internal/pkg/logger"
	"go.uber.org/zap"
)

const (
	defaultMaxResults         = 10
	defaultInsightsMaxResults = 20
	defaultMaxTopics          = 5
	defaultMaxTrends          = 10
)

// Searcher is the slice of the Masa client the use case depends on
type Searcher interface {
	LiveSearch(ctx context.Context, query, searchType string, maxResults int) ([]masa.Item, error)
	IndexedSearch(ctx context.Context, req masa.IndexedRequest) ([]masa.Item, error)
	HybridSearch(ctx context.Context, req masa.HybridRequest) ([]masa.Item, error)
}

// UseCase implements the KOL analysis actions on top of the search client
// and the sentiment/topic analyzer. It holds no per-request state.
type UseCase struct {
	searcher       Searcher
	analyzer       nlp.Analyzer
	logger         *logger.Logger
	fallbackMaxRes int
}

// NewUseCase creates a KOL use case. defaultMax is the max_results applied
// when a request does not specify one.
func NewUseCase(searcher Searcher, analyzer nlp.Analyzer, log *logger.Logger, defaultMax int) *UseCase {
	if defaultMax <= 0 {
		defaultMax = defaultMaxResults
	}
	return &UseCase{
		searcher:       searcher,
		analyzer:       analyzer,
		logger:         log,
		fallbackMaxRes: defaultMax,
	}
}

// Search fetches KOL content via the configured search mode
func (u *UseCase) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	if u.searcher == nil {
		return nil, apperrors.New(apperrors.ErrProviderComm, "Masa API client not configured")
	}

	searchType := p.SearchType
	if searchType == "" {
		searchType = SearchTypeIndexed
	}
	maxResults := u.clampMaxResults(p.MaxResults)

	query := p.Query
	keywords := p.Keywords

	// A kol_username narrows the search: live search folds it into the
	// query syntax, index-backed searches filter on the handle keyword.
	if p.KOLUsername != "" {
		if searchType == SearchTypeLive {
			query = strings.TrimSpace("from:" + p.KOLUsername + " " + query)
		} else {
			keywords = append(keywords, "@"+p.KOLUsername)
		}
	}

	var (
		items []masa.Item
		err   error
	)
	switch searchType {
	case SearchTypeLive:
		items, err = u.searcher.LiveSearch(ctx, query, masa.SearchByQuery, maxResults)
	case SearchTypeIndexed:
		items, err = u.searcher.IndexedSearch(ctx, masa.IndexedRequest{
			Query:           query,
			Kind:            masa.KindSimilarity,
			Keywords:        keywords,
			KeywordOperator: p.KeywordOperator,
			MaxResults:      maxResults,
		})
	case SearchTypeHybrid:
		textQuery := p.TextQuery
		if textQuery == "" {
			textQuery = query
		}
		items, err = u.searcher.HybridSearch(ctx, masa.HybridRequest{
			SimilarityQuery:  query,
			TextQuery:        textQuery,
			SimilarityWeight: weightOrDefault(p.SimilarityWeight, 0.7),
			TextWeight:       weightOrDefault(p.TextWeight, 0.3),
			Keywords:         keywords,
			KeywordOperator:  p.KeywordOperator,
			MaxResults:       maxResults,
		})
	default:
		return nil, apperrors.New(apperrors.ErrInvalidSearchType, searchType)
	}
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []masa.Item{}
	}
	return &SearchResult{
		Query:       query,
		SearchType:  searchType,
		MaxResults:  maxResults,
		KOLUsername: p.KOLUsername,
		Results:     items,
		ResultCount: len(items),
	}, nil
}

// Sentiment analyzes either a single text or the content matching a query
func (u *UseCase) Sentiment(ctx context.Context, p AnalyzeParams) (interface{}, error) {
	if p.Text != nil {
		return &TextSentiment{
			Text:           *p.Text,
			Sentiment:      u.analyzer.Sentiment(*p.Text),
			SingleAnalysis: true,
		}, nil
	}
	if p.Query == nil {
		return nil, apperrors.NewValidationError("Missing required parameter: either 'text' or 'query' must be provided")
	}

	search, err := u.Search(ctx, SearchParams{
		Query:           *p.Query,
		SearchType:      p.SearchType,
		MaxResults:      p.MaxResults,
		Keywords:        p.Keywords,
		KeywordOperator: p.KeywordOperator,
		KOLUsername:     p.KOLUsername,
	})
	if err != nil {
		return nil, err
	}

	texts := contentTexts(search.Results)
	results := nlp.SentimentBatch(u.analyzer, texts)

	return &QuerySentiment{
		Query:            *p.Query,
		KOLUsername:      p.KOLUsername,
		SentimentResults: results,
		Distribution:     ClassifyDistribution(results),
		ResultCount:      len(texts),
		SingleAnalysis:   false,
	}, nil
}

// Topics extracts topics from either a single text or the content matching
// a query
func (u *UseCase) Topics(ctx context.Context, p AnalyzeParams) (interface{}, error) {
	maxTopics := intOrDefault(p.MaxTopics, defaultMaxTopics)

	if p.Text != nil {
		topics := u.analyzer.Topics(*p.Text, maxTopics)
		return &TextTopics{
			Text:           *p.Text,
			Topics:         topics,
			TopicCount:     len(topics),
			SingleAnalysis: true,
		}, nil
	}
	if p.Query == nil {
		return nil, apperrors.NewValidationError("Missing required parameter: either 'text' or 'query' must be provided")
	}

	search, err := u.Search(ctx, SearchParams{
		Query:           *p.Query,
		SearchType:      p.SearchType,
		MaxResults:      p.MaxResults,
		Keywords:        p.Keywords,
		KeywordOperator: p.KeywordOperator,
		KOLUsername:     p.KOLUsername,
	})
	if err != nil {
		return nil, err
	}

	texts := contentTexts(search.Results)
	tally := NewTopicTally()
	for _, text := range texts {
		tally.Add(u.analyzer.Topics(text, maxTopics)...)
	}

	return &QueryTopics{
		Query:          *p.Query,
		KOLUsername:    p.KOLUsername,
		TopTopics:      tally.Top(maxTopics),
		AllTopics:      tally.Counts(),
		ResultCount:    len(texts),
		SingleAnalysis: false,
	}, nil
}

// Insights builds the comprehensive sentiment/topic report for one KOL
func (u *UseCase) Insights(ctx context.Context, p InsightsParams) (*Insights, error) {
	maxResults := p.MaxResults
	if maxResults == nil {
		d := defaultInsightsMaxResults
		maxResults = &d
	}

	search, err := u.Search(ctx, SearchParams{
		Query:       p.Query,
		SearchType:  p.SearchType,
		MaxResults:  maxResults,
		KOLUsername: p.Username,
	})
	if err != nil {
		return nil, err
	}

	texts := contentTexts(search.Results)
	if len(texts) == 0 {
		return &Insights{
			Username: p.Username,
			Query:    p.Query,
			Error:    "No content found for this KOL",
			Success:  false,
		}, nil
	}

	results := nlp.SentimentBatch(u.analyzer, texts)
	distribution := ClassifyDistribution(results)

	tally := NewTopicTally()
	for _, text := range texts {
		tally.Add(u.analyzer.Topics(text, 10)...)
	}

	// The recent-content listing re-reads the first raw items, so posts
	// without a Content field show up with an empty text here.
	recent := make([]ContentAnalysis, 0, 5)
	for _, item := range search.Results {
		if len(recent) == 5 {
			break
		}
		text, _ := item.Content()
		recent = append(recent, ContentAnalysis{
			Text:      text,
			Sentiment: u.analyzer.Sentiment(text),
			Topics:    u.analyzer.Topics(text, 3),
		})
	}

	return &Insights{
		Username:      p.Username,
		Query:         p.Query,
		ContentCount:  len(texts),
		Distribution:  &distribution,
		TopTopics:     tally.Top(10),
		RecentContent: recent,
		Success:       true,
	}, nil
}

// Trends aggregates topics and sentiment across several KOLs. Usernames
// are processed one at a time; a failure for one username is recorded in
// its entry and never aborts the rest of the batch.
func (u *UseCase) Trends(ctx context.Context, p TrendsParams) (*Trends, error) {
	if len(p.Usernames) == 0 {
		return nil, apperrors.NewValidationError("Empty usernames list")
	}

	maxPerKOL := intOrDefault(p.MaxResultsPerKOL, defaultMaxResults)
	maxTrends := intOrDefault(p.MaxTrends, defaultMaxTrends)

	allTally := NewTopicTally()
	var allSentiments []nlp.Sentiment
	kolResults := make(map[string]*KOLTrend, len(p.Usernames))
	analyzed := 0

	for _, username := range p.Usernames {
		search, err := u.Search(ctx, SearchParams{
			Query:       p.Query,
			SearchType:  p.SearchType,
			MaxResults:  &maxPerKOL,
			KOLUsername: username,
		})
		if err != nil {
			u.logger.Error("error analyzing KOL",
				zap.String("username", username),
				zap.Error(err),
			)
			kolResults[username] = &KOLTrend{Error: err.Error()}
			continue
		}

		texts := contentTexts(search.Results)
		if len(texts) == 0 {
			u.logger.Warn("no content found for KOL", zap.String("username", username))
			kolResults[username] = &KOLTrend{Error: "No content found"}
			continue
		}

		results := nlp.SentimentBatch(u.analyzer, texts)
		distribution := ClassifyDistribution(results)

		var kolTopics []string
		for _, text := range texts {
			kolTopics = append(kolTopics, u.analyzer.Topics(text, defaultMaxTopics)...)
		}

		kolResults[username] = &KOLTrend{
			ContentCount: len(texts),
			Topics:       kolTopics,
			Distribution: &distribution,
		}
		analyzed++

		allTally.Add(kolTopics...)
		allSentiments = append(allSentiments, results...)
	}

	return &Trends{
		Usernames:        p.Usernames,
		Query:            p.Query,
		TopTrends:        allTally.Top(maxTrends),
		KOLCount:         len(p.Usernames),
		AnalyzedCount:    analyzed,
		OverallSentiment: ClassifyDistribution(allSentiments),
		KOLResults:       kolResults,
		Success:          true,
	}, nil
}

// contentTexts collects the Content field of each item. Items without the
// field are dropped, not treated as an error; downstream counts key off
// this post-filter length.
func contentTexts(items []masa.Item) []string {
	texts := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := item.Content(); ok {
			texts = append(texts, text)
		}
	}
	return texts
}

// clampMaxResults applies the configured default and the hard [1, 100]
// bounds
func (u *UseCase) clampMaxResults(requested *int) int {
	n := u.fallbackMaxRes
	if requested != nil {
		n = *requested
	}
	if n < 1 {
		n = 1
	}
	if n > 100 {
		n = 100
	}
	return n
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func weightOrDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
