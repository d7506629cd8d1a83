package syncer

import (
	"io"
	"log/slog"
	"time"
)

// SyncEvent records the outcome of a single save.
type SyncEvent struct {
	Tasks    int
	Duration time.Duration
	Err      error
}

// Observer receives save outcomes. Failed saves are reported here and
// nowhere else; the in-memory store stays authoritative either way.
type Observer interface {
	OnSyncComplete(event SyncEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSyncComplete(SyncEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes sync outcomes to w as structured log lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnSyncComplete(event SyncEvent) {
	attrs := []any{
		"tasks", event.Tasks,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Err == nil,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("cloud_sync", attrs...)
		return
	}
	o.logger.Info("cloud_sync", attrs...)
}
