package problemgen

import (
	"log/slog"
	"time"
)

// LoggingGenerator is a decorator that logs every generation attempt.
type LoggingGenerator struct {
	inner  Generator
	logger *slog.Logger
}

// WithLogging wraps a Generator with debug logging.
func WithLogging(g Generator, logger *slog.Logger) Generator {
	return &LoggingGenerator{inner: g, logger: logger}
}

func (l *LoggingGenerator) Generate(input GenerateInput) (*Question, error) {
	start := time.Now()
	q, err := l.inner.Generate(input)
	latency := time.Since(start)

	if err != nil {
		l.logger.Warn("question rejected",
			"max_sum", input.MaxSumValue,
			"retryable", IsRetryable(err),
			"error", err,
			"latency", latency,
		)
		return nil, err
	}
	l.logger.Debug("question generated",
		"sum", q.Sum,
		"visible", q.VisibleNumber,
		"options", q.Options,
		"latency", latency,
	)
	return q, nil
}
