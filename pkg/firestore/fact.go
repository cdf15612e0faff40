package firestore

import (
	"context"
	"facts/pkg/models"
	"fmt"

	"cloud.google.com/go/firestore"
)

// FetchFacts reads the feed for filter. Filtering on category while ordering by
// votes_interesting needs a composite index on (category, votes_interesting desc).
func (fs *Firestore) FetchFacts(ctx context.Context, filter models.Filter) ([]*models.Fact, error) {
	return query[models.Fact](ctx, fs.client, fs.factsCriteria(filter))
}

func (fs *Firestore) factsCriteria(filter models.Filter) QueryCriteria {
	criteria := QueryCriteria{
		Path: fs.collection,
		OrderBy: []OrderBy{
			{
				Field:     models.FieldVotesInteresting,
				Direction: firestore.Desc,
			},
		},
		Limit: fs.limit,
	}

	if !filter.IsAll() {
		criteria.Filter = createPropertyFilter(models.FieldCategory, Equal, filter.Category())
	}

	return criteria
}

// InsertFact stores fact under a new id and returns the document as stored.
func (fs *Firestore) InsertFact(ctx context.Context, fact *models.Fact) (*models.Fact, error) {
	created := *fact
	created.ID = models.NewFactID()

	path := fs.factPath(created.ID)
	if err := create(ctx, fs.client, path, &created); err != nil {
		return nil, err
	}

	return get[models.Fact](ctx, fs.client, path)
}

// UpdateFactField sets one field and returns the document as stored after the write.
func (fs *Firestore) UpdateFactField(ctx context.Context, id, field string, value int) (*models.Fact, error) {
	path := fs.factPath(id)
	if err := update(ctx, fs.client, path, map[string]any{field: value}); err != nil {
		return nil, err
	}

	return get[models.Fact](ctx, fs.client, path)
}

func (fs *Firestore) factPath(id string) string {
	return fmt.Sprintf("%s/%s", fs.collection, id)
}
