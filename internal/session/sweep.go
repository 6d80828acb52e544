package session

import (
	"context"
	"time"

	"storefront-gateway/internal/logger"

	"go.uber.org/zap"
)

// Sweep deletes expired sessions every interval until ctx is done.
func Sweep(ctx context.Context, store Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.DeleteExpired(ctx)
			if err != nil {
				logger.L().Warn("session sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.L().Info("expired sessions removed", zap.Int64("count", n))
			}
		}
	}
}
