package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger for a run at the configured level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// silentLogger drops everything. Used while a full-screen program is up.
func silentLogger() *log.Logger {
	return log.New(io.Discard)
}

// buildTimer reports how long a full-space walk took.
type buildTimer struct {
	logger *log.Logger
	start  time.Time
}

func startBuild(l *log.Logger) *buildTimer {
	return &buildTimer{logger: l, start: time.Now()}
}

// finish logs msg with the states visited and the elapsed time as fields.
func (b *buildTimer) finish(msg string, states int) {
	b.logger.Info(msg, "states", states, "elapsed", time.Since(b.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger setup attached, or log.Default()
// for code paths that run without it.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
