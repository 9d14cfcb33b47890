package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/bookstore/internal/models"
)

const (
	TypeCartItemAdded   = "cart_item_added"
	TypeCartItemRemoved = "cart_item_removed"
)

type CartEvent struct {
	EventID    string           `json:"event_id"`
	Type       string           `json:"type"`
	UserID     string           `json:"user_id"`
	CartItemID uint             `json:"cart_item_id"`
	BookID     uint             `json:"book_id,omitempty"`
	Title      string           `json:"title,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func CartItemAdded(item *models.CartItem) CartEvent {
	price := item.Price
	return CartEvent{
		EventID:    uuid.NewString(),
		Type:       TypeCartItemAdded,
		UserID:     item.UserID,
		CartItemID: item.ID,
		BookID:     item.BookID,
		Title:      item.Title,
		Price:      &price,
		OccurredAt: time.Now().UTC(),
	}
}

func CartItemRemoved(id uint, userID string) CartEvent {
	return CartEvent{
		EventID:    uuid.NewString(),
		Type:       TypeCartItemRemoved,
		UserID:     userID,
		CartItemID: id,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }

func (Nop) Close() error { return nil }
