package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/Skotchmaster/bookstore/internal/events"
	"github.com/Skotchmaster/bookstore/internal/logging"
	"github.com/Skotchmaster/bookstore/internal/metrics"
	"github.com/Skotchmaster/bookstore/internal/models"
)

type CartRepository interface {
	AddToCart(ctx context.Context, bookID uint, userID string) (*models.CartItem, error)
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)
	DeleteCartItem(ctx context.Context, id uint, userID string) error
}

type CartService struct {
	Repo   CartRepository
	Events events.Publisher
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// AddToCart copies the book's title, price and author into a new cart row
// owned by userID. Store errors are returned unwrapped.
func (s *CartService) AddToCart(ctx context.Context, bookID, userID string) (*models.CartItem, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	id, ok := parseID(bookID)
	if !ok {
		return nil, fmt.Errorf("book %q: %w", bookID, ErrNotFound)
	}

	item, err := s.Repo.AddToCart(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	metrics.CartItemsAdded.Inc()
	s.publish(ctx, userID, events.CartItemAdded(item))
	return item, nil
}

// GetCart returns userID's items, newest first.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.GetCart(ctx, userID)
}

// DeleteCartItem removes the item only if userID owns it. A missing item and
// someone else's item both yield ErrNotFound.
func (s *CartService) DeleteCartItem(ctx context.Context, itemID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	id, ok := parseID(itemID)
	if !ok {
		return fmt.Errorf("cart item %q: %w", itemID, ErrNotFound)
	}

	err := s.Repo.DeleteCartItem(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}

	metrics.CartItemsRemoved.Inc()
	s.publish(ctx, userID, events.CartItemRemoved(id, userID))
	return nil
}

func (s *CartService) publish(ctx context.Context, userID string, event events.CartEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, userID, event); err != nil {
		logging.FromContext(ctx).Error("cart_event_publish_error", "type", event.Type, "error", err)
	}
}
