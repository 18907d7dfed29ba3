package momentoredis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// Batch key operations fan out one remote call per key and join all of them
// before returning. The first error aborts the aggregate (the group context
// cancels the in-flight siblings); there is no partial-success reporting.

// Del deletes the given keys concurrently and returns the number of delete
// calls that succeeded. The remote delete is idempotent and does not report
// prior presence, so absent keys are counted too.
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if len(keys) == 0 {
		return redis.NewIntResult(0, nil)
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			rsp, err := c.remote.Delete(gctx, key)
			if err != nil {
				return c.remoteErr("delete", err)
			}
			switch rsp.(type) {
			case remote.DeleteSuccess:
				return nil
			default:
				return c.badResponse("delete", rsp)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return redis.NewIntResult(0, err)
	}
	c.log.Debug("deleted keys", Fields{"count": len(keys)})
	return redis.NewIntResult(int64(len(keys)), nil)
}

// MGet fetches the given keys concurrently. The result preserves caller
// order; a missing key yields nil at its position.
func (c *Client) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	if len(keys) == 0 {
		return redis.NewSliceResult(nil, nil)
	}
	out := make([]interface{}, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			rsp, err := c.remote.Get(gctx, key)
			if err != nil {
				return c.remoteErr("get", err)
			}
			switch r := rsp.(type) {
			case remote.GetHit:
				out[i] = string(r.Value)
				return nil
			case remote.GetMiss:
				out[i] = nil
				return nil
			default:
				return c.badResponse("get", rsp)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return redis.NewSliceResult(nil, err)
	}
	return redis.NewSliceResult(out, nil)
}

// MSet stores every pair concurrently. Pairs follow the go-redis variadic
// conventions ("k1", "v1", ..., a []string, or a map).
func (c *Client) MSet(ctx context.Context, values ...interface{}) *redis.StatusCmd {
	pairs, err := fieldPairs("MSET", values)
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	g, gctx := errgroup.WithContext(ctx)
	for key, value := range pairs {
		key, value := key, value
		g.Go(func() error {
			rsp, err := c.remote.Set(gctx, key, value, 0)
			if err != nil {
				return c.remoteErr("set", err)
			}
			switch rsp.(type) {
			case remote.SetSuccess:
				return nil
			default:
				return c.badResponse("set", rsp)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return redis.NewStatusResult("", err)
	}
	c.log.Debug("mset stored pairs", Fields{"count": len(pairs)})
	return redis.NewStatusResult("OK", nil)
}
