package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bookstore/internal/metrics"
)

type Deps struct {
	BooksHandler *BooksHTTP
	CartHandler  *CartHTTP
	// Ready reports whether the store is reachable. Nil means always ready.
	Ready       func(ctx context.Context) error
	BooksDir    string
	FrontendDir string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")

	books := api.Group("/books")
	books.GET("", d.BooksHandler.ListBooks)
	books.GET("/search", d.BooksHandler.SearchBooks)

	cart := api.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("/:id", d.CartHandler.DeleteCartItem)

	if d.BooksDir != "" {
		e.Static("/books", d.BooksDir)
	}
	if d.FrontendDir != "" {
		e.Static("/", d.FrontendDir)
	}
}
