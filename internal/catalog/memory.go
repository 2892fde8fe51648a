package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MemoryStore serves articles from a slice. It is the default store for
// the demo so the server runs without a database.
type MemoryStore struct {
	articles []Article
}

// NewMemoryStore creates a store over the given articles. Order is
// preserved as given.
func NewMemoryStore(articles []Article) *MemoryStore {
	return &MemoryStore{articles: articles}
}

var seedTopics = []string{"go", "databases", "htmx", "testing", "deployment"}

// SeedArticles generates n demo articles, newest first.
func SeedArticles(n int) []Article {
	base := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

	articles := make([]Article, n)
	for i := range articles {
		articles[i] = Article{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("Field notes #%d", n-i),
			Topic:       seedTopics[i%len(seedTopics)],
			PublishedAt: base.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	return articles
}

func (s *MemoryStore) List(_ context.Context, limit, offset int) ([]Article, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("negative limit or offset (limit=%d, offset=%d)", limit, offset)
	}
	if offset >= len(s.articles) {
		return []Article{}, nil
	}

	end := offset + limit
	if end > len(s.articles) {
		end = len(s.articles)
	}
	return s.articles[offset:end], nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.articles)), nil
}
