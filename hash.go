package momentoredis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// Hash commands map 1:1 onto remote dictionary operations. Multi-field
// writes and reads are a single batched remote call per invocation, never
// one call per field.

func (c *Client) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	rsp, err := c.remote.HashGet(ctx, key, field)
	if err != nil {
		return redis.NewStringResult("", c.remoteErr("hget", err))
	}
	switch r := rsp.(type) {
	case remote.HashGetHit:
		return redis.NewStringResult(string(r.Value), nil)
	case remote.HashGetMiss:
		return redis.NewStringResult("", redis.Nil)
	default:
		return redis.NewStringResult("", c.badResponse("hget", rsp))
	}
}

// HSet accepts the go-redis variadic forms (alternating pairs, a map, or an
// alternating slice), merges them last-writer-wins, and issues one batched
// remote write. The count returned is the number of distinct fields sent,
// not the number of fields that were new.
func (c *Client) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	items, err := fieldPairs("HSET", values)
	if err != nil {
		return redis.NewIntResult(0, err)
	}
	rsp, err := c.remote.HashSet(ctx, key, items)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("hset", err))
	}
	switch rsp.(type) {
	case remote.WriteSuccess:
		return redis.NewIntResult(int64(len(items)), nil)
	default:
		return redis.NewIntResult(0, c.badResponse("hset", rsp))
	}
}

// HMGet fetches the given fields in one batched remote call. The result
// preserves caller order; absent fields (or an absent hash) yield nil.
func (c *Client) HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd {
	rsp, err := c.remote.HashGetMulti(ctx, key, fields)
	if err != nil {
		return redis.NewSliceResult(nil, c.remoteErr("hmget", err))
	}
	switch r := rsp.(type) {
	case remote.HashGetMultiHit:
		out := make([]interface{}, len(fields))
		for i, f := range fields {
			if v, ok := r.Values[f]; ok {
				out[i] = string(v)
			}
		}
		return redis.NewSliceResult(out, nil)
	case remote.HashGetMultiMiss:
		return redis.NewSliceResult(make([]interface{}, len(fields)), nil)
	default:
		return redis.NewSliceResult(nil, c.badResponse("hmget", rsp))
	}
}

// HGetAll returns every field of the hash; a missing hash is an empty map,
// not an error.
func (c *Client) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	rsp, err := c.remote.HashFetch(ctx, key)
	if err != nil {
		return redis.NewMapStringStringResult(nil, c.remoteErr("hgetall", err))
	}
	switch r := rsp.(type) {
	case remote.HashFetchHit:
		out := make(map[string]string, len(r.Items))
		for f, v := range r.Items {
			out[f] = string(v)
		}
		return redis.NewMapStringStringResult(out, nil)
	case remote.HashFetchMiss:
		return redis.NewMapStringStringResult(map[string]string{}, nil)
	default:
		return redis.NewMapStringStringResult(nil, c.badResponse("hgetall", rsp))
	}
}

func (c *Client) HKeys(ctx context.Context, key string) *redis.StringSliceCmd {
	rsp, err := c.remote.HashFetch(ctx, key)
	if err != nil {
		return redis.NewStringSliceResult(nil, c.remoteErr("hkeys", err))
	}
	switch r := rsp.(type) {
	case remote.HashFetchHit:
		out := make([]string, 0, len(r.Items))
		for f := range r.Items {
			out = append(out, f)
		}
		return redis.NewStringSliceResult(out, nil)
	case remote.HashFetchMiss:
		return redis.NewStringSliceResult([]string{}, nil)
	default:
		return redis.NewStringSliceResult(nil, c.badResponse("hkeys", rsp))
	}
}

func (c *Client) HVals(ctx context.Context, key string) *redis.StringSliceCmd {
	rsp, err := c.remote.HashFetch(ctx, key)
	if err != nil {
		return redis.NewStringSliceResult(nil, c.remoteErr("hvals", err))
	}
	switch r := rsp.(type) {
	case remote.HashFetchHit:
		out := make([]string, 0, len(r.Items))
		for _, v := range r.Items {
			out = append(out, string(v))
		}
		return redis.NewStringSliceResult(out, nil)
	case remote.HashFetchMiss:
		return redis.NewStringSliceResult([]string{}, nil)
	default:
		return redis.NewStringSliceResult(nil, c.badResponse("hvals", rsp))
	}
}

func (c *Client) HLen(ctx context.Context, key string) *redis.IntCmd {
	rsp, err := c.remote.HashLength(ctx, key)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("hlen", err))
	}
	switch r := rsp.(type) {
	case remote.LengthHit:
		return redis.NewIntResult(r.Length, nil)
	case remote.LengthMiss:
		return redis.NewIntResult(0, nil)
	default:
		return redis.NewIntResult(0, c.badResponse("hlen", rsp))
	}
}

// HDel removes the given fields in one batched remote call. The count
// returned is the number of fields requested; the remote does not report
// how many actually existed.
func (c *Client) HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd {
	rsp, err := c.remote.HashRemove(ctx, key, fields)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("hdel", err))
	}
	switch rsp.(type) {
	case remote.WriteSuccess:
		return redis.NewIntResult(int64(len(fields)), nil)
	default:
		return redis.NewIntResult(0, c.badResponse("hdel", rsp))
	}
}

func (c *Client) HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd {
	rsp, err := c.remote.HashIncrement(ctx, key, field, incr)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("hincrby", err))
	}
	switch r := rsp.(type) {
	case remote.IncrementSuccess:
		return redis.NewIntResult(r.Value, nil)
	default:
		return redis.NewIntResult(0, c.badResponse("hincrby", rsp))
	}
}
