package masa

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// IndexedSearch runs a synchronous search against the provider's pre-built
// content index. No polling is involved.
func (c *Client) IndexedSearch(ctx context.Context, req IndexedRequest) ([]Item, error) {
	kind := req.Kind
	if kind == "" {
		kind = KindSimilarity
	}

	payload := indexedPayload{
		Query:      req.Query,
		MaxResults: req.MaxResults,
	}
	// The keyword filter is attached only when keywords are present.
	if len(req.Keywords) > 0 {
		payload.Keywords = req.Keywords
		payload.KeywordOperator = operatorOrDefault(req.KeywordOperator)
	}

	var items []Item
	if err := c.doJSON(ctx, http.MethodPost, "/v1/search/"+kind+"/twitter", payload, &items); err != nil {
		return nil, err
	}

	c.logger.Info("indexed search completed",
		zap.String("kind", kind),
		zap.Int("results", len(items)),
	)
	return items, nil
}

// HybridSearch runs a synchronous search combining a semantic and a
// full-text sub-query, each with its own weight.
func (c *Client) HybridSearch(ctx context.Context, req HybridRequest) ([]Item, error) {
	payload := hybridPayload{
		SimilarityQuery: weightedQuery{Query: req.SimilarityQuery, Weight: req.SimilarityWeight},
		TextQuery:       weightedQuery{Query: req.TextQuery, Weight: req.TextWeight},
		MaxResults:      req.MaxResults,
	}
	if len(req.Keywords) > 0 {
		payload.Keywords = req.Keywords
		payload.KeywordOperator = operatorOrDefault(req.KeywordOperator)
	}

	var items []Item
	if err := c.doJSON(ctx, http.MethodPost, "/v1/search/hybrid/twitter", payload, &items); err != nil {
		return nil, err
	}

	c.logger.Info("hybrid search completed", zap.Int("results", len(items)))
	return items, nil
}

func operatorOrDefault(op string) string {
	if op == "" {
		return OperatorAnd
	}
	return op
}
