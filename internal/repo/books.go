package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/bookstore/internal/models"
)

func (r *GormRepo) ListBooks(ctx context.Context) ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := r.DB.WithContext(ctx).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *GormRepo) GetBook(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := r.DB.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// SearchBooks matches q case-insensitively against title, author and category.
func (r *GormRepo) SearchBooks(ctx context.Context, q string, offset, limit int) (int64, []models.Book, error) {
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
	where := `LOWER(title) LIKE ? ESCAPE '\' OR LOWER(author) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`

	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Book{}).
		Where(where, pattern, pattern, pattern).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	books := make([]models.Book, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&books).Error; err != nil {
		return 0, nil, err
	}

	return total, books, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
