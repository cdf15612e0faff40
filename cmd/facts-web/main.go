package main

import (
	"context"
	"facts/pkg/config"
	"facts/pkg/log"
	"os"
)

const defaultConfigFilename = "config.yaml"

func main() {
	ctx := context.Background()

	configFilename := defaultConfigFilename
	if len(os.Args) > 1 {
		configFilename = os.Args[1]
	}

	cfg, err := config.ReadConfig(configFilename)
	if err != nil {
		panic(err)
	}

	initializeLogger(ctx, cfg)
	defer log.Logger().Close()

	store, closeStore := initializeStore(ctx, cfg)
	defer closeStore()

	s := newServer(ctx, cfg, store)

	if cfg.Queue.Enabled {
		q := initializeQueue(ctx, cfg)
		defer q.Close()
		s.notifier = q
	}

	s.start()
}
