package firestore

import (
	"context"
	"facts/pkg/models"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func create[T any](ctx context.Context, client *firestore.Client, documentPath string, t *T) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	if _, err := dr.Create(ctx, t); err != nil {
		return fmt.Errorf("error creating document, %w", err)
	}

	return nil
}

func get[T any](ctx context.Context, client *firestore.Client, documentPath string) (*T, error) {
	dr := client.Doc(documentPath)
	if dr == nil {
		return nil, fmt.Errorf("invalid document path, %s", documentPath)
	}

	ds, err := dr.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting document, %w", notFound(err, documentPath))
	}

	return decode[T](ds)
}

func update(ctx context.Context, client *firestore.Client, documentPath string, fields map[string]any) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	if _, err := dr.Update(ctx, updates); err != nil {
		return fmt.Errorf("error updating document, %w", notFound(err, documentPath))
	}

	return nil
}

func query[T any](ctx context.Context, client *firestore.Client, criteria QueryCriteria) ([]*T, error) {
	cr := client.Collection(criteria.Path)
	if cr == nil {
		return nil, fmt.Errorf("invalid collection path, %s", criteria.Path)
	}

	q := cr.Query
	if criteria.Filter != nil {
		q = q.WhereEntity(criteria.Filter)
	}

	for _, o := range criteria.OrderBy {
		q = q.OrderBy(o.Field, o.Direction)
	}

	if criteria.Offset > 0 {
		q = q.Offset(criteria.Offset)
	}

	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}

	ds, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying documents, %w", err)
	}

	documents := make([]*T, 0, len(ds))
	for _, d := range ds {
		t, err := decode[T](d)
		if err != nil {
			return nil, err
		}
		documents = append(documents, t)
	}

	return documents, nil
}

// keyed documents fall back to their document id when no id field was stored.
type keyed interface {
	SetMissingID(id string)
}

func decode[T any](ds *firestore.DocumentSnapshot) (*T, error) {
	t := new(T)
	if err := ds.DataTo(t); err != nil {
		return nil, fmt.Errorf("error decoding document %s, %w", ds.Ref.ID, err)
	}

	if k, ok := any(t).(keyed); ok {
		k.SetMissingID(ds.Ref.ID)
	}

	return t, nil
}

// notFound maps a grpc NotFound status onto models.ErrFactNotFound.
func notFound(err error, documentPath string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w, %s", models.ErrFactNotFound, documentPath)
	}
	return err
}

type QueryCriteria struct {
	Path    string
	Filter  firestore.EntityFilter
	OrderBy []OrderBy
	Limit   int
	Offset  int
}

type OrderBy struct {
	Field     string
	Direction firestore.Direction
}

const Equal string = "=="

func createPropertyFilter(path, operator string, value any) firestore.PropertyFilter {
	return firestore.PropertyFilter{
		Path:     path,
		Operator: operator,
		Value:    value,
	}
}
