package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper removes sessions whose tokens no longer validate.
type Sweeper interface {
	SweepExpired() int
}

// RunSessionSweeper calls sweeper every interval until ctx is done. A
// non-positive interval returns immediately.
func RunSessionSweeper(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *zap.Logger) {
	if sweeper == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sweeper.SweepExpired(); removed > 0 {
				logger.Info("expired sessions swept", zap.Int("removed", removed))
			}
		}
	}
}
