// Package catalog is the demo data source for the article list: a Store
// interface with a seeded in-memory implementation and a Postgres one.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Article is one row in the demo list.
type Article struct {
	ID          uuid.UUID
	Title       string
	Topic       string
	PublishedAt time.Time
}

// Store lists articles newest-first in stable order.
type Store interface {
	// List returns up to limit articles starting at offset.
	List(ctx context.Context, limit, offset int) ([]Article, error)
	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)
}
