package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/bookstore/internal/models"
	"github.com/Skotchmaster/bookstore/internal/search"
)

type BookRepository interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
}

type CatalogService struct {
	Repo   BookRepository
	Search search.Searcher
}

// ListBooks returns every book in store order.
func (s *CatalogService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return s.Repo.ListBooks(ctx)
}

func (s *CatalogService) SearchBooks(ctx context.Context, q string, offset, limit int) (int64, []models.Book, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("query must not be empty: %w", ErrValidation)
	}
	return s.Search.Search(ctx, q, offset, limit)
}
