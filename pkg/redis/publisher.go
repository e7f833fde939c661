package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/throttle/pkg/broadcast"
	"github.com/dmitrymomot/throttle/pkg/logger"
	"github.com/dmitrymomot/throttle/pkg/throttle"
)

// publishClient is the subset of redis.UniversalClient the Publisher needs.
type publishClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Publisher mirrors scheduler events to a Redis pub/sub channel as JSON.
type Publisher struct {
	client  publishClient
	channel string
	logger  *slog.Logger
}

// NewPublisher creates a Publisher writing to channel.
func NewPublisher(client publishClient, channel string, log *slog.Logger) *Publisher {
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{client: client, channel: channel, logger: log}
}

// Publish sends a single event.
func (p *Publisher) Publish(ctx context.Context, ev throttle.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Join(ErrPublish, err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Join(ErrPublish, err)
	}
	return nil
}

// Run forwards every event from sub until ctx is done or sub is closed.
// Publish failures are logged and do not stop forwarding.
func (p *Publisher) Run(ctx context.Context, sub broadcast.Subscriber[throttle.Event]) error {
	defer sub.Close()

	ch := sub.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := p.Publish(ctx, msg.Data); err != nil {
				p.logger.ErrorContext(ctx, "mirror scheduler event",
					logger.Signal(msg.Data.Signal.String()),
					logger.Error(err))
			}
		}
	}
}

// Listen subscribes to channel and decodes the mirrored events. The returned
// channel is closed when ctx is done. Undecodable payloads are logged and skipped.
func Listen(ctx context.Context, client redis.UniversalClient, channel string, log *slog.Logger) (<-chan throttle.Event, error) {
	if log == nil {
		log = slog.Default()
	}

	pubsub := client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan throttle.Event)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ev, err := decodeEvent(msg.Payload)
				if err != nil {
					log.WarnContext(ctx, "skip mirrored event", logger.Error(err))
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func decodeEvent(payload string) (throttle.Event, error) {
	var ev throttle.Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return throttle.Event{}, errors.Join(ErrDecodeEvent, err)
	}
	return ev, nil
}
