package contracts

import (
	"context"
	"time"
)

// LockerService provides the in-flight guard for profile saves: a second
// save for the same account while one is running is rejected, not queued.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
