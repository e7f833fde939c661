package logger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// TaskID records a task identifier under the key "task_id".
// The zero UUID yields an empty Attr.
func TaskID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("task_id", id.String())
}

// Signal records a scheduler signal name under the key "signal".
func Signal(name string) slog.Attr {
	return slog.String("signal", name)
}

// Queued records the number of queued tasks under the key "queued".
func Queued(n int) slog.Attr {
	return slog.Int("queued", n)
}

// Interval records a dispatch interval under the key "interval".
func Interval(d time.Duration) slog.Attr {
	return slog.Duration("interval", d)
}

// Rate records the configured rate as a group of count and time unit.
func Rate(count int, unit time.Duration) slog.Attr {
	return Group("rate",
		slog.Int("count", count),
		slog.Duration("per", unit),
	)
}
