package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"                    json:"id"`
	Title     string          `gorm:"size:255;uniqueIndex:idx_books_title_author" json:"title"`
	Author    string          `gorm:"size:255;uniqueIndex:idx_books_title_author" json:"author"`
	Category  string          `gorm:"size:50"                                     json:"category"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)"                          json:"price"`
	ImagePath string          `gorm:"type:text"                                   json:"image_path"`
	PdfPath   string          `gorm:"type:text"                                   json:"pdf_path"`
}

func (Book) TableName() string {
	return "books"
}

// CartItem keeps its own copy of the book's title, price and author as they
// were when the item was added.
type CartItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"                          json:"id"`
	BookID      uint            `gorm:"not null"                                          json:"book_id"`
	Book        *Book           `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"    json:"-"`
	Title       string          `gorm:"size:255"                                          json:"title"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"                                json:"price"`
	Author      string          `gorm:"size:255"                                          json:"author"`
	UserID      string          `gorm:"size:255;not null;index"                           json:"user_id"`
	TimeOrdered time.Time       `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"time_ordered"`
}

func (CartItem) TableName() string {
	return "cart"
}

// All lists the models owned by this service, in creation order.
func All() []any {
	return []any{&Book{}, &CartItem{}}
}
