package tavily

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
	"github.com/Siddhartha1011/AI-Astrologer/internal/metrics"
	"github.com/Siddhartha1011/AI-Astrologer/internal/ports"
)

const (
	searchDepth = "basic"
	maxResults  = 3
)

// Client implements ports.Searcher via the Tavily search API.
type Client struct {
	http     *resty.Client
	apiKey   string
	endpoint string
	logger   *zap.Logger
}

var _ ports.Searcher = (*Client)(nil)

// NewClient builds a Tavily client. timeout bounds each search request.
func NewClient(apiKey, endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout).
			SetRetryCount(0),
		apiKey:   apiKey,
		endpoint: endpoint,
		logger:   logger.With(zap.String("component", "tavily")),
	}
}

type searchRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

type searchResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search issues exactly one request. Non-2xx responses, transport errors and
// undecodable bodies are reported as domain.ErrUpstreamSearch.
func (c *Client) Search(ctx context.Context, query string) (ports.SearchResult, error) {
	if c.apiKey == "" {
		return ports.SearchResult{}, domain.ErrSearchNotConfigured
	}

	start := time.Now()
	defer func() { metrics.ObserveExternal("tavily", time.Since(start).Seconds()) }()

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(searchRequest{
			APIKey:        c.apiKey,
			Query:         query,
			SearchDepth:   searchDepth,
			IncludeAnswer: true,
			MaxResults:    maxResults,
		}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(c.endpoint)
	if err != nil {
		return ports.SearchResult{}, fmt.Errorf("%w: %w", domain.ErrUpstreamSearch, err)
	}
	if resp.IsError() {
		return ports.SearchResult{}, fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamSearch, resp.StatusCode(), resp.String())
	}

	result := ports.SearchResult{
		Answer:  out.Answer,
		Results: make([]domain.Snippet, 0, len(out.Results)),
	}
	for _, r := range out.Results {
		result.Results = append(result.Results, domain.Snippet{Title: r.Title, Content: r.Content})
	}

	c.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("result_count", len(result.Results)),
		zap.Bool("has_answer", result.Answer != ""),
	)
	return result, nil
}
