package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// CompleteFinishedBookings marks confirmed bookings as COMPLETED once their
// rental period has ended.
func (jr *JobRunner) CompleteFinishedBookings() {
	jr.runWithRecovery("CompleteFinishedBookings", func() {
		ctx := context.Background()

		today := time.Now().UTC().Format("2006-01-02")
		count, err := jr.bookings.CompleteFinished(ctx, today)
		if err != nil {
			logger.Error("Failed to complete finished bookings", "error", err)
			return
		}

		logger.Info("Completed finished bookings", "count", count)
	})
}

// CancelStalePendingBookings cancels bookings that have been sitting in
// PENDING longer than the configured expiry window.
func (jr *JobRunner) CancelStalePendingBookings() {
	jr.runWithRecovery("CancelStalePendingBookings", func() {
		ctx := context.Background()

		expiryDays := jr.config.Booking.PendingExpiryDays
		cutoff := time.Now().UTC().AddDate(0, 0, -expiryDays)

		count, err := jr.bookings.CancelStalePending(ctx, cutoff.Format(time.RFC3339))
		if err != nil {
			logger.Error("Failed to cancel stale pending bookings", "error", err)
			return
		}

		logger.Info("Cancelled stale pending bookings", "count", count, "expiry_days", expiryDays)
	})
}
