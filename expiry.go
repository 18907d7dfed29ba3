package momentoredis

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// relativeTTL normalizes a Set expiration into the relative duration passed
// to the remote call. Sub-second precision is truncated to whole seconds to
// match the remote API's expiry granularity; a duration that truncates to
// zero falls through to the remote client's default TTL.
func relativeTTL(expiration time.Duration) (time.Duration, error) {
	if expiration < 0 {
		return 0, fmt.Errorf("momentoredis: negative expiration %v", expiration)
	}
	return expiration.Truncate(time.Second), nil
}

// argsTTL derives a single relative TTL from SetArgs. TTL and ExpireAt are
// mutually exclusive; an absolute deadline is converted to target-now at
// call time, which is inherently racy against clock drift and call latency.
func argsTTL(a redis.SetArgs, now func() time.Time) (time.Duration, error) {
	if a.TTL != 0 && !a.ExpireAt.IsZero() {
		return 0, fmt.Errorf("momentoredis: SET with both TTL and EXAT")
	}
	if a.TTL != 0 {
		if a.TTL == redis.KeepTTL {
			return 0, &NotImplementedError{Command: "SET KEEPTTL"}
		}
		return relativeTTL(a.TTL)
	}
	if !a.ExpireAt.IsZero() {
		d := a.ExpireAt.Sub(now())
		if d <= 0 {
			return 0, fmt.Errorf("momentoredis: SET EXAT deadline %v is in the past", a.ExpireAt)
		}
		return d.Truncate(time.Second), nil
	}
	return 0, nil
}
