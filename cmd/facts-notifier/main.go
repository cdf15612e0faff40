package main

import (
	"context"
	"facts/pkg/config"
	"facts/pkg/log"
	"facts/pkg/queue"
	"os"
	"os/signal"
	"syscall"
)

const defaultConfigFilename = "config.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	initializeQueue(ctx, cfg)
	defer queue.Get().Close()

	n := &notifier{
		cfg:   cfg,
		tally: newTally(),
	}

	n.start()
}
