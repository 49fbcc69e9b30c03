package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every request's purpose,
// model, latency and token usage.
type LoggingProvider struct {
	inner Provider
	log   *zap.SugaredLogger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.SugaredLogger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	purpose := PurposeFrom(ctx)
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if err != nil {
		l.log.Warnw("llm request failed",
			"purpose", purpose,
			"model", l.inner.ModelID(),
			"latency", latency,
			"error", err,
		)
		return nil, err
	}

	l.log.Debugw("llm request",
		"purpose", purpose,
		"model", resp.Model,
		"latency", latency,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason,
	)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
