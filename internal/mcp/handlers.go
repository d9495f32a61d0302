package mcp

import (
	"context"

	"github.com/kolsense/kolsense/internal/kol"
	apperrors "github.com/kolsense/kolsense/internal/pkg/errors"
)

// KOLService is the slice of the KOL use case the action handlers depend on
type KOLService interface {
	Search(ctx context.Context, p kol.SearchParams) (*kol.SearchResult, error)
	Sentiment(ctx context.Context, p kol.AnalyzeParams) (interface{}, error)
	Topics(ctx context.Context, p kol.AnalyzeParams) (interface{}, error)
	Insights(ctx context.Context, p kol.InsightsParams) (*kol.Insights, error)
	Trends(ctx context.Context, p kol.TrendsParams) (*kol.Trends, error)
}

// RegisterKOLActions binds the kol.* action namespace to the service
func RegisterKOLActions(r *Router, svc KOLService) {
	r.Register("kol.search", func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		query, err := requireString(params, "query")
		if err != nil {
			return nil, err
		}
		return svc.Search(ctx, kol.SearchParams{
			Query:            query,
			SearchType:       stringParam(params, "search_type"),
			MaxResults:       intParam(params, "max_results"),
			Keywords:         stringList(params, "keywords"),
			KeywordOperator:  stringParam(params, "keyword_operator"),
			KOLUsername:      stringParam(params, "kol_username"),
			TextQuery:        stringParam(params, "text_query"),
			SimilarityWeight: floatParam(params, "similarity_weight"),
			TextWeight:       floatParam(params, "text_weight"),
		})
	})

	r.Register("kol.sentiment", func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return svc.Sentiment(ctx, analyzeParams(params))
	})

	r.Register("kol.topics", func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return svc.Topics(ctx, analyzeParams(params))
	})

	r.Register("kol.insights", func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		username, err := requireString(params, "username")
		if err != nil {
			return nil, err
		}
		return svc.Insights(ctx, kol.InsightsParams{
			Username:   username,
			Query:      stringParam(params, "query"),
			SearchType: stringParam(params, "search_type"),
			MaxResults: intParam(params, "max_results"),
		})
	})

	r.Register("kol.trends", func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		usernames := stringList(params, "usernames")
		if len(usernames) == 0 {
			return nil, apperrors.NewValidationError("Missing required parameter: 'usernames'")
		}
		return svc.Trends(ctx, kol.TrendsParams{
			Usernames:        usernames,
			Query:            stringParam(params, "query"),
			SearchType:       stringParam(params, "search_type"),
			MaxResultsPerKOL: intParam(params, "max_results_per_kol"),
			MaxTrends:        intParam(params, "max_trends"),
		})
	})
}

func analyzeParams(params map[string]interface{}) kol.AnalyzeParams {
	return kol.AnalyzeParams{
		Text:            stringPtrParam(params, "text"),
		Query:           stringPtrParam(params, "query"),
		SearchType:      stringParam(params, "search_type"),
		MaxResults:      intParam(params, "max_results"),
		Keywords:        stringList(params, "keywords"),
		KeywordOperator: stringParam(params, "keyword_operator"),
		KOLUsername:     stringParam(params, "kol_username"),
		MaxTopics:       intParam(params, "max_topics"),
	}
}
