package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bookstore/internal/logging"
	"github.com/Skotchmaster/bookstore/internal/models"
	"github.com/Skotchmaster/bookstore/internal/service"
	"github.com/Skotchmaster/bookstore/internal/transport"
	"github.com/Skotchmaster/bookstore/internal/util"
)

type BooksHTTP struct {
	Svc *service.CatalogService
}

func (h *BooksHTTP) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "list.books")

	books, err := h.Svc.ListBooks(ctx)
	if err != nil {
		l.Error("list_books_error", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
	}

	l.Debug("books listed", "count", len(books))
	return c.JSON(http.StatusOK, books)
}

func (h *BooksHTTP) SearchBooks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search.books")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, books, err := h.Svc.SearchBooks(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("search_books_error", "status", http.StatusBadRequest, "reason", "empty_query")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "query parameter q is required"})
		}
		l.Error("search_books_error", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
	}
	if books == nil {
		books = []models.Book{}
	}

	page = offset/limit + 1
	pages := util.TotalPages(total, limit)
	return c.JSON(http.StatusOK, transport.SearchResponse{
		Total: total,
		Books: books,
		Meta: transport.SearchMeta{
			Page:       page,
			Size:       limit,
			TotalPages: pages,
			HasPrev:    page > 1,
			HasNext:    int64(page) < pages,
		},
	})
}
