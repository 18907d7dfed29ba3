package momentoredis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// Get returns the raw payload stored under key, or redis.Nil on a miss.
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	rsp, err := c.remote.Get(ctx, key)
	if err != nil {
		return redis.NewStringResult("", c.remoteErr("get", err))
	}
	switch r := rsp.(type) {
	case remote.GetHit:
		return redis.NewStringResult(string(r.Value), nil)
	case remote.GetMiss:
		return redis.NewStringResult("", redis.Nil)
	default:
		return redis.NewStringResult("", c.badResponse("get", rsp))
	}
}

// Set stores value under key. expiration follows the go-redis contract:
// zero means no explicit expiry (the remote default applies) and
// redis.KeepTTL is rejected because the remote API cannot preserve an
// existing expiry.
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if expiration == redis.KeepTTL {
		return redis.NewStatusResult("", c.notImplemented("SET KEEPTTL"))
	}
	ttl, err := relativeTTL(expiration)
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	return c.set(ctx, key, value, ttl)
}

// SetArgs supports the full SET option surface. Options whose semantics the
// remote API cannot reproduce (XX, GET, KEEPTTL) fail with
// *NotImplementedError instead of being approximated.
func (c *Client) SetArgs(ctx context.Context, key string, value interface{}, a redis.SetArgs) *redis.StatusCmd {
	switch {
	case strings.EqualFold(a.Mode, "xx"):
		return redis.NewStatusResult("", c.notImplemented("SET XX"))
	case a.Get:
		return redis.NewStatusResult("", c.notImplemented("SET GET"))
	case a.KeepTTL || a.TTL == redis.KeepTTL:
		return redis.NewStatusResult("", c.notImplemented("SET KEEPTTL"))
	}

	ttl, err := argsTTL(a, time.Now)
	if err != nil {
		return redis.NewStatusResult("", err)
	}

	if strings.EqualFold(a.Mode, "nx") {
		b, err := encodeValue(value)
		if err != nil {
			return redis.NewStatusResult("", err)
		}
		stored, err := c.setIfAbsent(ctx, key, b, ttl)
		if err != nil {
			return redis.NewStatusResult("", err)
		}
		if !stored {
			// go-redis reports an unmet NX condition as Nil.
			return redis.NewStatusResult("", redis.Nil)
		}
		return redis.NewStatusResult("OK", nil)
	}

	return c.set(ctx, key, value, ttl)
}

// SetNX performs an atomic conditional write: true exactly when this caller
// won the key.
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	ttl, err := relativeTTL(expiration)
	if err != nil {
		return redis.NewBoolResult(false, err)
	}
	b, err := encodeValue(value)
	if err != nil {
		return redis.NewBoolResult(false, err)
	}
	stored, err := c.setIfAbsent(ctx, key, b, ttl)
	if err != nil {
		return redis.NewBoolResult(false, err)
	}
	return redis.NewBoolResult(stored, nil)
}

// SetEx stores value with a mandatory expiry.
func (c *Client) SetEx(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ttl, err := relativeTTL(expiration)
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	return c.set(ctx, key, value, ttl)
}

// Incr increments the counter at key by 1 and returns the new value.
func (c *Client) Incr(ctx context.Context, key string) *redis.IntCmd {
	return c.incrBy(ctx, "incr", key, 1)
}

func (c *Client) IncrBy(ctx context.Context, key string, value int64) *redis.IntCmd {
	return c.incrBy(ctx, "incrby", key, value)
}

// Decr decrements the counter at key by 1 and returns the new value.
func (c *Client) Decr(ctx context.Context, key string) *redis.IntCmd {
	return c.incrBy(ctx, "decr", key, -1)
}

func (c *Client) DecrBy(ctx context.Context, key string, decrement int64) *redis.IntCmd {
	return c.incrBy(ctx, "decrby", key, -decrement)
}

func (c *Client) set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	b, err := encodeValue(value)
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	rsp, err := c.remote.Set(ctx, key, b, ttl)
	if err != nil {
		return redis.NewStatusResult("", c.remoteErr("set", err))
	}
	switch rsp.(type) {
	case remote.SetSuccess:
		return redis.NewStatusResult("OK", nil)
	default:
		return redis.NewStatusResult("", c.badResponse("set", rsp))
	}
}

func (c *Client) setIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	rsp, err := c.remote.SetIfAbsent(ctx, key, value, ttl)
	if err != nil {
		return false, c.remoteErr("set_if_absent", err)
	}
	switch rsp.(type) {
	case remote.CondSetStored:
		return true, nil
	case remote.CondSetNotStored:
		return false, nil
	default:
		return false, c.badResponse("set_if_absent", rsp)
	}
}

// incrBy maps both increment and decrement onto the remote's single atomic
// increment; the remote returns the post-increment value.
func (c *Client) incrBy(ctx context.Context, op, key string, amount int64) *redis.IntCmd {
	rsp, err := c.remote.Increment(ctx, key, amount)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr(op, err))
	}
	switch r := rsp.(type) {
	case remote.IncrementSuccess:
		return redis.NewIntResult(r.Value, nil)
	default:
		return redis.NewIntResult(0, c.badResponse(op, rsp))
	}
}
