package momentoredis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// Set commands map 1:1 onto remote set operations. Mutation counts reflect
// the number of elements the caller asked to change, not a verified count
// of elements actually changed; the remote API does not report the latter.

func (c *Client) SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	elements, err := encodeValues(members)
	if err != nil {
		return redis.NewIntResult(0, err)
	}
	rsp, err := c.remote.SetAdd(ctx, key, elements)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("sadd", err))
	}
	switch rsp.(type) {
	case remote.WriteSuccess:
		return redis.NewIntResult(int64(len(elements)), nil)
	default:
		return redis.NewIntResult(0, c.badResponse("sadd", rsp))
	}
}

func (c *Client) SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	elements, err := encodeValues(members)
	if err != nil {
		return redis.NewIntResult(0, err)
	}
	rsp, err := c.remote.SetRemove(ctx, key, elements)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("srem", err))
	}
	switch rsp.(type) {
	case remote.WriteSuccess:
		return redis.NewIntResult(int64(len(elements)), nil)
	default:
		return redis.NewIntResult(0, c.badResponse("srem", rsp))
	}
}

// SMembers returns all members; a missing set is an empty slice, not an
// error. Order is unspecified.
func (c *Client) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	rsp, err := c.remote.SetFetch(ctx, key)
	if err != nil {
		return redis.NewStringSliceResult(nil, c.remoteErr("smembers", err))
	}
	switch r := rsp.(type) {
	case remote.SetFetchHit:
		out := make([]string, len(r.Elements))
		for i, e := range r.Elements {
			out[i] = string(e)
		}
		return redis.NewStringSliceResult(out, nil)
	case remote.SetFetchMiss:
		return redis.NewStringSliceResult([]string{}, nil)
	default:
		return redis.NewStringSliceResult(nil, c.badResponse("smembers", rsp))
	}
}
