package repo

import (
	"context"

	"github.com/Skotchmaster/bookstore/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCart looks the book up and inserts the cart row in one transaction.
// A missing book surfaces as gorm.ErrRecordNotFound.
func (r *GormRepo) AddToCart(ctx context.Context, bookID uint, userID string) (*models.CartItem, error) {
	var item models.CartItem

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			return err
		}

		item = models.CartItem{
			BookID: book.ID,
			Title:  book.Title,
			Price:  book.Price,
			Author: book.Author,
			UserID: userID,
		}
		return tx.Omit(clause.Associations).Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time_ordered DESC").
		Order("id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteCartItem removes the item only when it belongs to userID. Nothing
// deleted is reported as gorm.ErrRecordNotFound whatever the reason.
func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint, userID string) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
