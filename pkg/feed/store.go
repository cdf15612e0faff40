package feed

import (
	"context"
	"facts/pkg/models"
)

// Store is the remote collection the feed reads from and writes to.
//
// FetchFacts returns facts ordered by votes_interesting descending, capped at the
// store's limit, restricted to one category unless filter is "all". An empty
// result is not an error. InsertFact assigns the id and returns the stored row.
// UpdateFactField writes one field and returns the stored row after the write.
type Store interface {
	FetchFacts(ctx context.Context, filter models.Filter) ([]*models.Fact, error)
	InsertFact(ctx context.Context, fact *models.Fact) (*models.Fact, error)
	UpdateFactField(ctx context.Context, id, field string, value int) (*models.Fact, error)
}

// Notifier receives fact change events after successful writes.
type Notifier interface {
	Publish(event *models.FactEvent) error
}
