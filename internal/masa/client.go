package masa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kolsense/kolsense/internal/pkg/logger"
	"go.uber.org/zap"
)

// Client talks to the Masa data API. It hides the provider's asymmetry
// between asynchronous live searches and synchronous indexed searches
// behind one call contract.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *logger.Logger
}

// New creates a Masa API client
func New(cfg *Config, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log,
	}, nil
}

// doJSON executes one HTTP round trip against the provider. Any transport
// failure or non-2xx status comes back as a *ProviderError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result interface{}) error {
	op := method + " " + path
	url := c.config.BaseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)

		c.logger.Debug("masa request",
			zap.String("method", method),
			zap.String("url", url),
			zap.String("body", string(data)),
		)
	} else {
		c.logger.Debug("masa request",
			zap.String("method", method),
			zap.String("url", url),
		)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("masa request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err),
		)
		return &ProviderError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Op: op, Err: err}
	}

	c.logger.Debug("masa response",
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(respData)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{Op: op, StatusCode: resp.StatusCode, Body: string(respData)}
	}

	if result != nil && len(respData) > 0 {
		if err := json.Unmarshal(respData, result); err != nil {
			return &ProviderError{Op: op, StatusCode: resp.StatusCode, Body: string(respData), Err: fmt.Errorf("unmarshal response: %w", err)}
		}
	}

	return nil
}

// Close releases idle connections
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
