// Package bootstrap prepares the store before the API starts serving: it
// creates the books and cart tables when missing and inserts the seed catalog.
// Both steps are safe to repeat.
package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/bookstore/internal/logging"
	"github.com/Skotchmaster/bookstore/internal/models"
)

// Indexer receives the seeded books, e.g. to make them searchable.
type Indexer interface {
	IndexBooks(ctx context.Context, books []models.Book) error
}

type Options struct {
	Books    []models.Book
	Indexer  Indexer
	SkipSeed bool
}

// EnsureSchema creates missing tables and columns. Existing data is never dropped.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedBooks inserts every book that is not present yet, keyed by title and
// author. It stops at the first store error; books inserted before that stay.
func SeedBooks(ctx context.Context, db *gorm.DB, books []models.Book) (int, error) {
	l := logging.FromContext(ctx).With("component", "bootstrap.seed")

	inserted := 0
	for i := range books {
		book := books[i]
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "title"}, {Name: "author"}},
				DoNothing: true,
			}).
			Create(&book)
		if res.Error != nil {
			l.Error("seed_book_failed", "title", book.Title, "error", res.Error)
			return inserted, fmt.Errorf("seed book %q: %w", book.Title, res.Error)
		}

		if res.RowsAffected > 0 {
			inserted++
			l.Info("seed_book_inserted", "title", book.Title, "id", book.ID)
		} else {
			l.Info("seed_book_exists", "title", book.Title)
		}
	}
	return inserted, nil
}

// Run ensures the schema and then seeds the catalog.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	l := logging.FromContext(ctx).With("component", "bootstrap")

	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	l.Info("schema_ready", "tables", []string{models.Book{}.TableName(), models.CartItem{}.TableName()})

	if opts.SkipSeed {
		return nil
	}

	books := opts.Books
	if books == nil {
		books = SeedCatalog()
	}
	inserted, err := SeedBooks(ctx, db, books)
	if err != nil {
		return err
	}
	l.Info("seed_complete", "inserted", inserted, "total", len(books))

	if opts.Indexer == nil {
		return nil
	}

	var stored []models.Book
	if err := db.WithContext(ctx).Order("id ASC").Find(&stored).Error; err != nil {
		return fmt.Errorf("load books for indexing: %w", err)
	}
	if err := opts.Indexer.IndexBooks(ctx, stored); err != nil {
		return fmt.Errorf("index books: %w", err)
	}
	l.Info("books_indexed", "count", len(stored))
	return nil
}
