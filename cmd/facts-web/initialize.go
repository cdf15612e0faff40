package main

import (
	"context"
	"facts/pkg/config"
	"facts/pkg/feed"
	"facts/pkg/firestore"
	"facts/pkg/log"
	"facts/pkg/memory"
	"facts/pkg/queue"
	"fmt"
)

func initializeLogger(ctx context.Context, cfg *config.Config) {
	_, err := log.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func initializeStore(ctx context.Context, cfg *config.Config) (feed.Store, func()) {
	logger := log.Logger()

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		logger.Rawf(log.Notice, "using in-memory fact store with sample facts")
		return memory.NewStore(cfg.Store.Limit, memory.SampleFacts()...), func() {}
	case config.StoreBackendFirestore:
		fs, err := firestore.Initialize(ctx, cfg)
		if err != nil {
			panic(fmt.Errorf("error initializing firestore, %s", err))
		}
		return fs, func() { _ = fs.Close() }
	default:
		panic(fmt.Errorf("unknown store backend, %s", cfg.Store.Backend))
	}
}

func initializeQueue(ctx context.Context, cfg *config.Config) queue.Queue {
	q, err := queue.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing queue, %s", err))
	}
	return q
}
