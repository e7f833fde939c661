package redis

import "time"

// Config describes the Redis connection used to mirror scheduler events.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" yaml:"url"`                                          // e.g. "redis://:password@localhost:6379/0"; empty disables mirroring
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3" yaml:"retry_attempts"`     // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s" yaml:"retry_interval"`    // pause between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s" yaml:"connect_timeout"` // overall budget for Connect
	Channel        string        `env:"REDIS_EVENTS_CHANNEL" envDefault:"throttle:events" yaml:"channel"`
}
