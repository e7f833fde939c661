// Package redis mirrors throttle scheduler events to a Redis pub/sub channel
// so that other processes can watch a scheduler without sharing memory.
//
// It wraps the go-redis client and adds:
//
//   - Connect, which retries the initial ping using Config
//   - Publisher, which forwards a scheduler subscription to a channel as JSON
//   - Listen, which decodes the mirrored events on the receiving side
//   - Healthcheck, for readiness probes
//
// Mirroring is observational only; rate limits are never coordinated across
// processes through Redis.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	pub := redis.NewPublisher(client, cfg.Channel, log)
//	go pub.Run(ctx, scheduler.Subscribe(ctx))
//
// On another process:
//
//	events, err := redis.Listen(ctx, client, cfg.Channel, log)
//	for ev := range events {
//	    fmt.Println(ev.Signal, ev.Queued)
//	}
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady, ErrPublish, ...) are joined with the
// underlying go-redis error using errors.Join; compare them with errors.Is.
package redis
