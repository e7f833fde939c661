package throttle

import "time"

// Config holds the rate ceiling: at most Rate dispatches per TimeUnit.
type Config struct {
	Rate     int           `env:"THROTTLE_RATE" envDefault:"10" yaml:"rate"`
	TimeUnit time.Duration `env:"THROTTLE_TIME_UNIT" envDefault:"1s" yaml:"time_unit"`
}

// Interval returns floor(TimeUnit / Rate) at nanosecond resolution.
// It returns 0 for an invalid configuration.
func (c Config) Interval() time.Duration {
	if c.Rate <= 0 || c.TimeUnit <= 0 {
		return 0
	}
	return c.TimeUnit / time.Duration(c.Rate)
}

// Validate reports the first configuration problem, if any.
func (c Config) Validate() error {
	switch {
	case c.Rate <= 0:
		return ErrInvalidRate
	case c.TimeUnit <= 0:
		return ErrInvalidTimeUnit
	case c.Interval() <= 0:
		return ErrIntervalTooSmall
	}
	return nil
}
