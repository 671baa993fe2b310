// Package slog provides logging decorators for msdocs domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/msdocs"
)

// Ensure LoggingResolver implements msdocs.Resolver.
var _ msdocs.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with lookup logging.
type LoggingResolver struct {
	next   msdocs.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next msdocs.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, query string) (match *msdocs.Match, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", query,
			"duration", time.Since(begin),
		}
		if match != nil {
			attrs = append(attrs, "name", match.Name, "kind", match.Kind, "distance", match.Distance)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, query)
}
