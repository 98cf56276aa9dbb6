package redis

import (
	"context"
	"fmt"
	"time"
)

const freqKeyFormat = "botguard:freq:%s:%s"

// IncrAlertCount bumps the rolling alert counter for a promoter-campaign pair.
// The first increment in a window starts the expiry clock.
func (r *implRepository) IncrAlertCount(ctx context.Context, promoterID, campaignID string, window time.Duration) (int64, error) {
	key := fmt.Sprintf(freqKeyFormat, promoterID, campaignID)

	count, err := r.client.IncrWindow(ctx, key, window)
	if err != nil {
		r.l.Errorf(ctx, "alerting.repository.redis.IncrAlertCount: Failed to increment counter %s: %v", key, err)
		return 0, err
	}
	return count, nil
}
