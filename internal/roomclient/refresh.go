package roomclient

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultRefreshInterval is how often AutoRefresh reloads the list.
const DefaultRefreshInterval = 30 * time.Second

// AutoRefresh reloads the list every interval until ctx is done. A tick is
// skipped while an edit is in progress or the view is hidden, so a reload
// never clobbers the form.
func (c *Controller) AutoRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.refreshTick(ctx)
		}
	}
}

// refreshTick performs one auto refresh step and reports whether it loaded.
func (c *Controller) refreshTick(ctx context.Context) bool {
	if !c.visible.Load() || c.Mode() == ModeEditing {
		return false
	}
	if err := c.Load(ctx); err != nil {
		c.logger.Debug("auto refresh failed", zap.Error(err))
	}
	return true
}
