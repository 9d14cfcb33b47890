package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/bookstore/internal/models"
)

type fakeStore struct {
	q             string
	offset, limit int
}

func (f *fakeStore) SearchBooks(_ context.Context, q string, offset, limit int) (int64, []models.Book, error) {
	f.q, f.offset, f.limit = q, offset, limit
	return 1, []models.Book{{ID: 1, Title: "Biology 101"}}, nil
}

func TestStoreSearcher_Delegates(t *testing.T) {
	store := &fakeStore{}
	s := &StoreSearcher{Store: store}

	total, books, err := s.Search(context.Background(), "bio", 10, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, books, 1)
	assert.Equal(t, "bio", store.q)
	assert.Equal(t, 10, store.offset)
	assert.Equal(t, 5, store.limit)
}

type esRequest struct {
	Method string
	Path   string
	Body   string
}

func newFakeES(t *testing.T, searchResponse string) (*ElasticSearcher, *[]esRequest) {
	t.Helper()

	var (
		mu   sync.Mutex
		reqs []esRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, esRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		mu.Unlock()

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = io.WriteString(w, searchResponse)
		case strings.Contains(r.URL.Path, "/_doc/"):
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"result":"created"}`)
		default:
			_, _ = io.WriteString(w, `{"version":{"number":"9.0.0"}}`)
		}
	}))
	t.Cleanup(srv.Close)

	s, err := NewElasticSearcher(ElasticConfig{URL: srv.URL, Index: "books"})
	require.NoError(t, err)
	return s, &reqs
}

func TestElasticSearcher_Search(t *testing.T) {
	s, reqs := newFakeES(t, `{"hits":{"total":{"value":2},"hits":[
		{"_source":{"id":2,"title":"Physics Advanced","author":"Blantyre Books","price":"10.5"}},
		{"_source":{"id":3,"title":"Physics Colleges","author":"Zomba Books","price":"25"}}]}}`)

	total, books, err := s.Search(context.Background(), "physics", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, books, 2)
	assert.Equal(t, "Physics Advanced", books[0].Title)
	assert.True(t, decimal.RequireFromString("10.50").Equal(books[0].Price))

	require.NotEmpty(t, *reqs)
	last := (*reqs)[len(*reqs)-1]
	assert.Equal(t, "/books/_search", last.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(last.Body), &body))
	assert.EqualValues(t, 0, body["from"])
	assert.EqualValues(t, 10, body["size"])
	mm := body["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "physics", mm["query"])
}

func TestElasticSearcher_IndexBooks(t *testing.T) {
	s, reqs := newFakeES(t, `{}`)

	books := []models.Book{
		{ID: 1, Title: "Biology 101", Price: decimal.RequireFromString("12.99")},
		{ID: 2, Title: "Physics Advanced", Price: decimal.RequireFromString("10.50")},
	}
	require.NoError(t, s.IndexBooks(context.Background(), books))

	var paths []string
	for _, r := range *reqs {
		if strings.Contains(r.Path, "/_doc/") {
			paths = append(paths, r.Path)
			assert.Equal(t, http.MethodPut, r.Method)
		}
	}
	assert.Equal(t, []string{"/books/_doc/1", "/books/_doc/2"}, paths)
}

func TestElasticSearcher_Ping(t *testing.T) {
	s, _ := newFakeES(t, `{}`)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestSearchBody(t *testing.T) {
	body := searchBody("bio", 20, 10)
	assert.Equal(t, 20, body["from"])
	assert.Equal(t, 10, body["size"])
}
