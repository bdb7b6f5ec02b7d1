package service

import (
	"context"

	"carrental-backend/internal/logger"
)

// loggingCacheInvalidator is the default CacheInvalidator: it only records
// that cached booking views are stale. Deployments with an edge cache swap
// in their own implementation at wiring time.
type loggingCacheInvalidator struct{}

func NewLoggingCacheInvalidator() CacheInvalidator {
	return &loggingCacheInvalidator{}
}

func (loggingCacheInvalidator) InvalidateBookings(ctx context.Context) {
	logger.DebugContext(ctx, "booking views invalidated")
}
