package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/bookstore/internal/models"
)

type ElasticConfig struct {
	URL      string
	User     string
	Password string
	Index    string
}

type ElasticSearcher struct {
	ES    *elasticsearch.Client
	Index string
}

func NewElasticSearcher(cfg ElasticConfig) (*ElasticSearcher, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return &ElasticSearcher{ES: client, Index: cfg.Index}, nil
}

// Ping checks that the cluster answers.
func (s *ElasticSearcher) Ping(ctx context.Context) error {
	res, err := s.ES.Info(s.ES.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch info: %s", res.Status())
	}
	return nil
}

func (s *ElasticSearcher) IndexBooks(ctx context.Context, books []models.Book) error {
	for _, b := range books {
		body, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode book %d: %w", b.ID, err)
		}

		res, err := s.ES.Index(
			s.Index,
			bytes.NewReader(body),
			s.ES.Index.WithDocumentID(strconv.FormatUint(uint64(b.ID), 10)),
			s.ES.Index.WithContext(ctx),
		)
		if err != nil {
			return fmt.Errorf("index book %d: %w", b.ID, err)
		}
		failed := res.IsError()
		status := res.Status()
		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()
		if failed {
			return fmt.Errorf("index book %d: %s", b.ID, status)
		}
	}
	return nil
}

func searchBody(q string, offset, limit int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"title^2", "author", "category"},
				"fuzziness": "AUTO",
			},
		},
		"from": offset,
		"size": limit,
	}
}

func (s *ElasticSearcher) Search(ctx context.Context, q string, offset, limit int) (int64, []models.Book, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(searchBody(q, offset, limit)); err != nil {
		return 0, nil, fmt.Errorf("encode search: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Book `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("decode search: %w", err)
	}

	books := make([]models.Book, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		books[i] = hit.Source
	}
	return r.Hits.Total.Value, books, nil
}
