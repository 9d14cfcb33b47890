package search

import (
	"context"

	"github.com/Skotchmaster/bookstore/internal/models"
)

type Searcher interface {
	Search(ctx context.Context, q string, offset, limit int) (int64, []models.Book, error)
}

type bookStore interface {
	SearchBooks(ctx context.Context, q string, offset, limit int) (int64, []models.Book, error)
}

// StoreSearcher runs searches against the relational store. It is the
// fallback when no Elasticsearch cluster is configured.
type StoreSearcher struct {
	Store bookStore
}

func (s *StoreSearcher) Search(ctx context.Context, q string, offset, limit int) (int64, []models.Book, error) {
	return s.Store.SearchBooks(ctx, q, offset, limit)
}
