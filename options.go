package pocketcube

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	metric Metric
	logger *log.Logger
}

func defaultConfig() *config {
	return &config{
		metric: QuarterTurn,
		logger: log.New(io.Discard),
	}
}

// WithMetric selects the exploration metric. The default is QuarterTurn.
func WithMetric(m Metric) Option {
	return func(c *config) {
		c.metric = m
	}
}

// WithLogger sets the logger used to report database construction.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
