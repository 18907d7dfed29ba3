package momentoredis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/momentoredis/internal/ranges"
	"github.com/unkn0wn-root/momentoredis/remote"
)

// List commands. Pushes are one batched concatenate per invocation and pops
// move exactly one element; the multi-element pop variants are unsupported.
// LRange fetches the whole list and slices locally because the remote fetch
// has no window parameters.

// LPush pushes values so the last argument ends up at the head, matching
// the Redis left-push ordering for multi-value calls. The values are
// reversed locally and sent as a single front concatenation.
func (c *Client) LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	encoded, err := encodeValues(values)
	if err != nil {
		return redis.NewIntResult(0, err)
	}
	for i, j := 0, len(encoded)-1; i < j; i, j = i+1, j-1 {
		encoded[i], encoded[j] = encoded[j], encoded[i]
	}
	rsp, err := c.remote.ListPushFront(ctx, key, encoded)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("lpush", err))
	}
	return c.pushed("lpush", rsp)
}

func (c *Client) RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	encoded, err := encodeValues(values)
	if err != nil {
		return redis.NewIntResult(0, err)
	}
	rsp, err := c.remote.ListPushBack(ctx, key, encoded)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("rpush", err))
	}
	return c.pushed("rpush", rsp)
}

func (c *Client) pushed(op string, rsp remote.ListPushOutcome) *redis.IntCmd {
	switch r := rsp.(type) {
	case remote.ListPushSuccess:
		return redis.NewIntResult(r.Length, nil)
	default:
		return redis.NewIntResult(0, c.badResponse(op, rsp))
	}
}

func (c *Client) LPop(ctx context.Context, key string) *redis.StringCmd {
	rsp, err := c.remote.ListPopFront(ctx, key)
	if err != nil {
		return redis.NewStringResult("", c.remoteErr("lpop", err))
	}
	return c.popped("lpop", rsp)
}

func (c *Client) RPop(ctx context.Context, key string) *redis.StringCmd {
	rsp, err := c.remote.ListPopBack(ctx, key)
	if err != nil {
		return redis.NewStringResult("", c.remoteErr("rpop", err))
	}
	return c.popped("rpop", rsp)
}

func (c *Client) popped(op string, rsp remote.ListPopOutcome) *redis.StringCmd {
	switch r := rsp.(type) {
	case remote.ListPopHit:
		return redis.NewStringResult(string(r.Value), nil)
	case remote.ListPopMiss:
		return redis.NewStringResult("", redis.Nil)
	default:
		return redis.NewStringResult("", c.badResponse(op, rsp))
	}
}

// LPopCount is unsupported: the remote pop moves one element and a looped
// emulation would not be atomic.
func (c *Client) LPopCount(ctx context.Context, key string, count int) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("LPOP count"))
}

func (c *Client) RPopCount(ctx context.Context, key string, count int) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("RPOP count"))
}

// LLen reports a missing list as length 0.
func (c *Client) LLen(ctx context.Context, key string) *redis.IntCmd {
	rsp, err := c.remote.ListLength(ctx, key)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("llen", err))
	}
	switch r := rsp.(type) {
	case remote.LengthHit:
		return redis.NewIntResult(r.Length, nil)
	case remote.LengthMiss:
		return redis.NewIntResult(0, nil)
	default:
		return redis.NewIntResult(0, c.badResponse("llen", rsp))
	}
}

// LRange fetches the full list and applies Redis index semantics locally:
// negative indexes count from the end, out-of-range windows clamp, and an
// inverted or missing window is an empty slice.
func (c *Client) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	rsp, err := c.remote.ListFetch(ctx, key)
	if err != nil {
		return redis.NewStringSliceResult(nil, c.remoteErr("lrange", err))
	}
	switch r := rsp.(type) {
	case remote.ListFetchHit:
		lo, hi := ranges.Slice(len(r.Values), start, stop)
		out := make([]string, 0, hi-lo)
		for _, v := range r.Values[lo:hi] {
			out = append(out, string(v))
		}
		return redis.NewStringSliceResult(out, nil)
	case remote.ListFetchMiss:
		return redis.NewStringSliceResult([]string{}, nil)
	default:
		return redis.NewStringSliceResult(nil, c.badResponse("lrange", rsp))
	}
}
