// Command throttle-demo schedules a batch of tasks through a throttle.Scheduler
// and exposes its state over HTTP. When REDIS_URL is set every scheduler
// signal is mirrored to a Redis pub/sub channel.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/throttle/pkg/httpstatus"
	"github.com/dmitrymomot/throttle/pkg/logger"
	"github.com/dmitrymomot/throttle/pkg/redis"
	"github.com/dmitrymomot/throttle/pkg/throttle"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithComponent("throttle-demo"),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
}

// run blocks until ctx is done or a component fails. The scheduler is
// stopped exactly once, by the deferred Close.
func run(ctx context.Context, cfg appConfig, log *slog.Logger, opts ...throttle.Option) error {
	opts = append([]throttle.Option{throttle.WithLogger(log)}, opts...)
	scheduler, err := throttle.NewFromConfig(cfg.Throttle, opts...)
	if err != nil {
		return err
	}
	defer scheduler.Close()

	g, ctx := errgroup.WithContext(ctx)

	var checks []func(context.Context) error
	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		checks = append(checks, redis.Healthcheck(client))
		pub := redis.NewPublisher(client, cfg.Redis.Channel, log)
		sub := scheduler.Subscribe(ctx)
		g.Go(func() error { return ignoreCanceled(pub.Run(ctx, sub)) })
	}

	srv := httpstatus.NewFromConfig(cfg.HTTP, httpstatus.WithLogger(log))
	g.Go(func() error {
		return srv.Run(ctx, httpstatus.Router(httpstatus.RouterOptions{
			Source: scheduler,
			Logger: log,
			Checks: checks,
		}))
	})

	for i := range cfg.Tasks {
		if _, err := scheduler.Schedule(func(arg any) {
			log.Info("task ran", slog.Int("n", arg.(int)))
		}, i+1); err != nil {
			return err
		}
	}

	scheduler.Start()

	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
