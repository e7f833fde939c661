package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Healthcheck reports whether the connection that carries mirrored scheduler
// events is usable. Mount it on the status server so /healthz turns NOT_READY
// while Publisher.Run would be dropping events:
//
//	httpstatus.RouterOptions{Source: scheduler, Checks: []func(context.Context) error{redis.Healthcheck(client)}}
//
// A failed ping is returned as ErrHealthcheckFailed joined with the go-redis error.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
