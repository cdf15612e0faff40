package log

import (
	"context"
	"facts/pkg/config"
	"fmt"
	"os"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"
)

func InitializeGCPLogger(ctx context.Context, cfg *config.Config, logID string) (Log, error) {
	if logger != nil {
		return logger, nil
	}

	client, err := logging.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, fmt.Errorf("error creating logging client")
	}

	logger = &severityLogger{
		sink: &gcpSink{
			client: client,
			logger: client.Logger(logID),
		},
		out: os.Stdout,
	}

	return logger, nil
}

type gcpSink struct {
	client *logging.Client
	logger *logging.Logger
}

func (gs *gcpSink) write(l Labeler, message string, severity Severity) {
	var labels map[string]string
	if l != nil {
		labels = l.Labels()
	}
	gs.logger.Log(logging.Entry{Payload: message, Severity: logging.Severity(severity), Labels: labels})
}

func (gs *gcpSink) close() error {
	return gs.client.Close()
}
