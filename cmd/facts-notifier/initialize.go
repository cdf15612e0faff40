package main

import (
	"context"
	"facts/pkg/config"
	"facts/pkg/log"
	"facts/pkg/queue"
	"fmt"
)

func initializeLogger(ctx context.Context, cfg *config.Config) {
	_, err := log.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func initializeQueue(ctx context.Context, cfg *config.Config) {
	_, err := queue.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing queue, %s", err))
	}
}
