package main

import (
	"github.com/dmitrymomot/throttle/pkg/config"
	"github.com/dmitrymomot/throttle/pkg/httpstatus"
	"github.com/dmitrymomot/throttle/pkg/redis"
	"github.com/dmitrymomot/throttle/pkg/throttle"
)

type appConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" yaml:"log_format"`
	Tasks     int    `env:"DEMO_TASKS" envDefault:"20" yaml:"tasks"`

	Throttle throttle.Config   `yaml:"throttle"`
	Redis    redis.Config      `yaml:"redis"`
	HTTP     httpstatus.Config `yaml:"http"`
}

func loadConfig(path string) (appConfig, error) {
	var opts []config.Option
	if path != "" {
		opts = append(opts, config.WithFile(path))
	}

	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}
