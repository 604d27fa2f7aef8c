package usecase

import (
	"context"
	"iter"
	"log/slog"
	"sync/atomic"

	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// PerPage is the platform maximum page size
const PerPage = 100

// PageFunc fetches one page (1-origin) of a collection
type PageFunc[T any] func(ctx context.Context, page, perPage int) ([]T, error)

// Collector drives a paged endpoint from page 1 until an empty page, a failed page or the
// optional cap. It yields items lazily and can be consumed only once.
type Collector[T any] struct {
	name     string
	fetch    PageFunc[T]
	guard    *QuotaGuard
	maxItems int
	used     atomic.Bool
}

type CollectorOption func(*collectorConfig)

type collectorConfig struct {
	maxItems int
}

// WithMaxItems caps the number of yielded items. Zero or negative means no cap.
func WithMaxItems(n int) CollectorOption {
	return func(c *collectorConfig) {
		c.maxItems = n
	}
}

// NewCollector creates a Collector. guard is consulted after every page that is followed by
// another request; nil disables the check.
func NewCollector[T any](name string, fetch PageFunc[T], guard *QuotaGuard, options ...CollectorOption) *Collector[T] {
	var cfg collectorConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return &Collector[T]{
		name:     name,
		fetch:    fetch,
		guard:    guard,
		maxItems: cfg.maxItems,
	}
}

func (x *Collector[T]) capped(n int) bool {
	return x.maxItems > 0 && n >= x.maxItems
}

// All yields collected items. A failed page ends the sequence without error and keeps what
// was already yielded. A non-nil error is only yielded for a fatal quota failure, and it is
// the last element.
func (x *Collector[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if x.used.Swap(true) {
			return
		}

		logger := logging.From(ctx).With(slog.String("collection", x.name))
		count := 0

		for page := 1; ; page++ {
			items, err := x.fetch(ctx, page, PerPage)
			if err != nil {
				logger.Warn("stop paginating on failed page",
					slog.Int("page", page),
					slog.Int("collected", count),
					slog.Any("error", err),
				)
				return
			}
			if len(items) == 0 {
				logger.Debug("no more items", slog.Int("page", page), slog.Int("collected", count))
				return
			}

			for _, item := range items {
				if x.capped(count) {
					return
				}
				if !yield(item, nil) {
					return
				}
				count++
			}

			logger.Debug("fetched page", slog.Int("page", page), slog.Int("items", len(items)), slog.Int("collected", count))

			if x.capped(count) {
				return
			}
			if x.guard != nil {
				if err := x.guard.CheckBudget(ctx); err != nil {
					var zero T
					yield(zero, err)
					return
				}
			}
		}
	}
}

// Collect drains All into a slice
func (x *Collector[T]) Collect(ctx context.Context) ([]T, error) {
	var resp []T
	for item, err := range x.All(ctx) {
		if err != nil {
			return resp, err
		}
		resp = append(resp, item)
	}
	return resp, nil
}
