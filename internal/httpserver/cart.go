package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bookstore/internal/identity"
	"github.com/Skotchmaster/bookstore/internal/logging"
	"github.com/Skotchmaster/bookstore/internal/models"
	"github.com/Skotchmaster/bookstore/internal/service"
	"github.com/Skotchmaster/bookstore/internal/transport"
)

const (
	msgUnauthenticated  = "User not authenticated"
	msgBookNotFound     = "Book not found"
	msgItemNotFound     = "Item not found in your cart."
	msgItemRemoved      = "Item removed from cart."
	addedToCartTemplate = "%s added to cart!"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", http.StatusBadRequest, "reason", "invalid_body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	userID := identity.Resolve(c, req.UserID.String())
	item, err := h.Svc.AddToCart(ctx, req.BookID.String(), userID)
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		l.Warn("add_to_cart_error", "status", http.StatusUnauthorized, "reason", "no_user")
		return c.JSON(http.StatusUnauthorized, transport.MessageResponse{Message: msgUnauthenticated})
	case errors.Is(err, service.ErrNotFound):
		l.Warn("add_to_cart_error", "status", http.StatusNotFound, "reason", "book_not_found", "error", err)
		return c.JSON(http.StatusNotFound, transport.MessageResponse{Message: msgBookNotFound})
	case err != nil:
		l.Error("add_to_cart_error", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
	}

	l.Info("item added to cart", "cart_item_id", item.ID, "book_id", item.BookID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: fmt.Sprintf(addedToCartTemplate, item.Title)})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cart")

	userID := identity.Resolve(c, c.QueryParam("userId"))
	items, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			l.Warn("get_cart_error", "status", http.StatusUnauthorized, "reason", "no_user")
			return c.JSON(http.StatusUnauthorized, transport.MessageResponse{Message: msgUnauthenticated})
		}
		l.Error("get_cart_error", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
	}
	if items == nil {
		items = []models.CartItem{}
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.cart.item")

	userID := identity.Resolve(c, c.QueryParam("userId"))
	err := h.Svc.DeleteCartItem(ctx, c.Param("id"), userID)
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		l.Warn("delete_cart_item_error", "status", http.StatusUnauthorized, "reason", "no_user")
		return c.JSON(http.StatusUnauthorized, transport.MessageResponse{Message: msgUnauthenticated})
	case errors.Is(err, service.ErrNotFound):
		l.Warn("delete_cart_item_error", "status", http.StatusNotFound, "reason", "not_owned_or_missing", "error", err)
		return c.JSON(http.StatusNotFound, transport.MessageResponse{Message: msgItemNotFound})
	case err != nil:
		l.Error("delete_cart_item_error", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
	}

	l.Info("cart item removed", "cart_item_id", c.Param("id"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msgItemRemoved})
}
