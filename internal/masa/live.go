package masa

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LiveSearch submits a live-search job, polls until it reaches a terminal
// state and fetches the results. The job lifecycle is
// submitted -> polling* -> done|failed|timed out; a failed or timed-out job
// is never resumed. The call blocks for up to
// MaxPollAttempts * PollInterval while the job runs.
func (c *Client) LiveSearch(ctx context.Context, query, searchType string, maxResults int) ([]Item, error) {
	if searchType == "" {
		searchType = SearchByQuery
	}

	payload := liveSearchRequest{
		Type: c.config.SourceType,
		Arguments: liveSearchArguments{
			Type:       searchType,
			Query:      query,
			MaxResults: maxResults,
		},
	}

	var submit submitResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/search/live/twitter", payload, &submit); err != nil {
		return nil, err
	}
	if submit.UUID == "" {
		c.logger.Error("no uuid returned from search request", zap.String("query", query))
		return nil, ErrNoJobID
	}

	c.logger.Info("search job submitted", zap.String("uuid", submit.UUID))

	if err := c.waitForJob(ctx, submit.UUID); err != nil {
		return nil, err
	}

	var items []Item
	if err := c.doJSON(ctx, http.MethodGet, "/v1/search/live/twitter/result/"+submit.UUID, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// waitForJob polls the status endpoint on a fixed interval until the job is
// done, the provider reports failure, or the retry budget runs out. The
// interval stays fixed: the ceiling times the interval is the observable
// timeout contract, so no backoff is applied.
func (c *Client) waitForJob(ctx context.Context, id string) error {
	statusPath := "/v1/search/live/twitter/status/" + id

	for attempt := 0; attempt < c.config.MaxPollAttempts; attempt++ {
		var status statusResponse
		if err := c.doJSON(ctx, http.MethodGet, statusPath, nil, &status); err != nil {
			return err
		}

		switch status.Status {
		case StatusDone:
			c.logger.Info("search job completed", zap.String("uuid", id))
			return nil
		case StatusError, StatusFailed:
			msg := status.Error
			if msg == "" {
				msg = "unknown error"
			}
			c.logger.Error("search job failed",
				zap.String("uuid", id),
				zap.String("error", msg),
			)
			return &JobError{ID: id, Message: msg}
		}

		c.logger.Debug("search job not ready, waiting before retrying",
			zap.String("uuid", id),
			zap.String("status", status.Status),
			zap.Int("attempt", attempt+1),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.config.PollInterval):
		}
	}

	c.logger.Error("search job timed out", zap.String("uuid", id))
	return ErrJobTimeout
}
