package transport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Skotchmaster/bookstore/internal/models"
)

// FlexibleID accepts a JSON string or number. Falsy values (null, false, 0,
// "") decode to the empty id.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*f = ""
		return nil
	case bytes.Equal(b, []byte("true")):
		*f = "true"
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	if v, err := n.Float64(); err == nil && v == 0 {
		*f = ""
		return nil
	}
	*f = FlexibleID(n.String())
	return nil
}

func (f FlexibleID) String() string {
	return string(f)
}

type AddToCartRequest struct {
	BookID FlexibleID `json:"bookId"`
	UserID FlexibleID `json:"userId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

type SearchResponse struct {
	Total int64         `json:"total"`
	Books []models.Book `json:"books"`
	Meta  SearchMeta    `json:"meta"`
}
