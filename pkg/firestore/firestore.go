package firestore

import (
	"context"
	"facts/pkg/config"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

var instance *Firestore

// Firestore is the fact collection backed by Cloud Firestore.
type Firestore struct {
	client     *firestore.Client
	collection string
	limit      int
}

func Get() *Firestore {
	if instance == nil {
		panic("firestore is not initialized")
	}

	return instance
}

func Initialize(ctx context.Context, cfg *config.Config) (*Firestore, error) {
	if instance != nil {
		return instance, nil
	}

	client, err := firestore.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating firestore client, %w", err)
	}

	instance = newFirestore(client, cfg.Store)
	return instance, nil
}

func newFirestore(client *firestore.Client, cfg config.StoreConfig) *Firestore {
	collection := cfg.Collection
	if len(collection) == 0 {
		collection = pathFacts
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Firestore{
		client:     client,
		collection: collection,
		limit:      limit,
	}
}

func (fs *Firestore) Close() error {
	return fs.client.Close()
}
