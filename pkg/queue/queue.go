package queue

import (
	"context"
	"facts/pkg/config"
	"facts/pkg/log"
	"facts/pkg/models"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

var instance Queue

// Queue carries fact events between the web process and downstream consumers.
type Queue interface {
	Publish(event *models.FactEvent) error
	Receive(callback func(*models.FactEvent)) error
	Close() error
}

func Get() Queue {
	if instance == nil {
		panic("queue is not initialized")
	}

	return instance
}

func Initialize(ctx context.Context, cfg *config.Config) (Queue, error) {
	if instance != nil {
		return instance, nil
	}

	client, err := pubsub.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating pubsub client, %w", err)
	}

	q, err := newQueue(ctx, client, cfg.Queue)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	instance = q
	return instance, nil
}

func newQueue(ctx context.Context, client *pubsub.Client, cfg config.QueueConfig) (*queue, error) {
	if len(cfg.Topic) == 0 {
		return nil, fmt.Errorf("no topic configured")
	}

	q := &queue{
		ctx:    ctx,
		client: client,
		topic:  client.Topic(cfg.Topic),
	}

	if len(cfg.Subscription) > 0 {
		q.subscription = client.Subscription(cfg.Subscription)
	}

	return q, nil
}

type queue struct {
	ctx          context.Context
	client       *pubsub.Client
	topic        *pubsub.Topic
	subscription *pubsub.Subscription
}

func (q *queue) Close() error {
	q.topic.Stop()
	return q.client.Close()
}

// Publish blocks until the server has accepted the event.
func (q *queue) Publish(event *models.FactEvent) error {
	logger := log.Logger()

	data, err := event.Serialize()
	if err != nil {
		return fmt.Errorf("error serializing fact event, %w", err)
	}

	result := q.topic.Publish(q.ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"type": event.Type},
	})

	if _, err = result.Get(q.ctx); err != nil {
		return fmt.Errorf("error publishing fact event, %w", err)
	}

	logger.Debugf(event, "published: %s", string(data))

	return nil
}

// Receive delivers events until the queue context is done. Undecodable messages are acked and dropped.
func (q *queue) Receive(callback func(*models.FactEvent)) error {
	logger := log.Logger()

	if q.subscription == nil {
		return fmt.Errorf("no subscription configured")
	}

	return q.subscription.Receive(q.ctx, func(ctx context.Context, msg *pubsub.Message) {
		logger.Debugf(nil, "received: %s", string(msg.Data))

		event, err := models.DeserializeFactEvent(msg.Data)
		msg.Ack()
		if err != nil {
			logger.Errorf(nil, "error deserializing fact event, %s", err)
			return
		}

		callback(event)
	})
}
