package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	tavilyBaseURL      = "https://api.tavily.com"
	defaultMaxResults  = 3
	defaultHTTPTimeout = 30 * time.Second
)

// TavilyClient calls the Tavily search API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

type TavilyOption func(*TavilyClient)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) TavilyOption {
	return func(c *TavilyClient) {
		c.baseURL = url
	}
}

// WithMaxResults bounds the number of findings per query.
func WithMaxResults(n int) TavilyOption {
	return func(c *TavilyClient) {
		c.maxResults = n
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) TavilyOption {
	return func(c *TavilyClient) {
		c.httpClient = client
	}
}

// NewTavilyClient creates a client with the given credential. The key is
// injected once at process start; the client never reads the environment.
func NewTavilyClient(apiKey string, opts ...TavilyOption) (*TavilyClient, error) {
	if apiKey == "" {
		return nil, errors.New("tavily api key is required")
	}
	c := &TavilyClient{
		apiKey:     apiKey,
		baseURL:    tavilyBaseURL,
		maxResults: defaultMaxResults,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Query issues one search call. Timeouts and cancellation come from ctx and
// the client's HTTP timeout; no retries happen at this layer.
func (c *TavilyClient) Query(ctx context.Context, text string) ([]Result, error) {
	body, err := json.Marshal(searchRequest{
		APIKey:     c.apiKey,
		Query:      text,
		MaxResults: c.maxResults,
	})
	if err != nil {
		return nil, errors.Wrap(err, "tavily: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "tavily: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "tavily: request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return nil, errors.Errorf("tavily: unexpected status %d: %s", res.StatusCode, string(b))
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, errors.Wrap(err, "tavily: decode response")
	}
	return sr.Results, nil
}
