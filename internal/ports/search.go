package ports

import (
	"context"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
)

// SearchResult is what a single web search returns.
type SearchResult struct {
	// Answer is the provider's inline summary; empty when none was produced.
	Answer  string
	Results []domain.Snippet
}

// Searcher runs one web search query.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchResult, error)
}
