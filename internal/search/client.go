// Package search provides the web-search collaborator boundary. The
// pipeline only depends on the Client interface; the Tavily implementation
// is the production backend.
package search

import "context"

// Result is one raw search finding.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Client performs one web query for a topic and returns raw findings.
type Client interface {
	Query(ctx context.Context, text string) ([]Result, error)
}
