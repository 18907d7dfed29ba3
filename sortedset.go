package momentoredis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/momentoredis/internal/ranges"
	"github.com/unkn0wn-root/momentoredis/remote"
)

// Sorted set commands. Rank ranges translate the Redis inclusive stop into
// the remote's exclusive end rank; by-score ranges use the remote's
// inclusive score bounds, so exclusive "(" bounds are unsupported and fail
// loudly. Reverse variants request descending remote order with the same
// named bounds.

// ZAdd puts all members in one batched remote call and returns the number
// of members sent; the remote does not report how many were new.
func (c *Client) ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	return c.zadd(ctx, key, members)
}

// ZAddArgs rejects every conditional-add flag: the remote put is
// unconditional and cannot reproduce NX/XX/GT/LT, and it does not report
// changed-counts for CH.
func (c *Client) ZAddArgs(ctx context.Context, key string, args redis.ZAddArgs) *redis.IntCmd {
	switch {
	case args.NX:
		return redis.NewIntResult(0, c.notImplemented("ZADD NX"))
	case args.XX:
		return redis.NewIntResult(0, c.notImplemented("ZADD XX"))
	case args.GT:
		return redis.NewIntResult(0, c.notImplemented("ZADD GT"))
	case args.LT:
		return redis.NewIntResult(0, c.notImplemented("ZADD LT"))
	case args.Ch:
		return redis.NewIntResult(0, c.notImplemented("ZADD CH"))
	}
	return c.zadd(ctx, key, args.Members)
}

func (c *Client) zadd(ctx context.Context, key string, members []redis.Z) *redis.IntCmd {
	elements := make([]remote.ScoredElement, len(members))
	for i, m := range members {
		b, err := encodeValue(m.Member)
		if err != nil {
			return redis.NewIntResult(0, err)
		}
		elements[i] = remote.ScoredElement{Value: b, Score: m.Score}
	}
	rsp, err := c.remote.SortedSetPut(ctx, key, elements)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("zadd", err))
	}
	switch rsp.(type) {
	case remote.WriteSuccess:
		return redis.NewIntResult(int64(len(elements)), nil)
	default:
		return redis.NewIntResult(0, c.badResponse("zadd", rsp))
	}
}

func (c *Client) ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd {
	rsp, err := c.remote.SortedSetIncrement(ctx, key, []byte(member), increment)
	if err != nil {
		return redis.NewFloatResult(0, c.remoteErr("zincrby", err))
	}
	switch r := rsp.(type) {
	case remote.ScoreSuccess:
		return redis.NewFloatResult(r.Score, nil)
	default:
		return redis.NewFloatResult(0, c.badResponse("zincrby", rsp))
	}
}

// ZRem removes all members in one batched remote call and returns the
// number requested, not a verified removed-count.
func (c *Client) ZRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	elements, err := encodeValues(members)
	if err != nil {
		return redis.NewIntResult(0, err)
	}
	rsp, err := c.remote.SortedSetRemove(ctx, key, elements)
	if err != nil {
		return redis.NewIntResult(0, c.remoteErr("zrem", err))
	}
	switch rsp.(type) {
	case remote.WriteSuccess:
		return redis.NewIntResult(int64(len(elements)), nil)
	default:
		return redis.NewIntResult(0, c.badResponse("zrem", rsp))
	}
}

func (c *Client) ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return c.zRangeByRank(ctx, "zrange", key, start, stop, remote.Ascending)
}

func (c *Client) ZRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	return c.zRangeByRankWithScores(ctx, "zrange", key, start, stop, remote.Ascending)
}

// ZRevRange is the descending counterpart of ZRange: ranks are interpreted
// from the high-score end, so [1,3] descending is the exact reverse of the
// ascending [1,3] window over the mirrored data.
func (c *Client) ZRevRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return c.zRangeByRank(ctx, "zrevrange", key, start, stop, remote.Descending)
}

func (c *Client) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	return c.zRangeByRankWithScores(ctx, "zrevrange", key, start, stop, remote.Descending)
}

func (c *Client) ZRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	elements, err := c.zFetchByScore(ctx, "zrangebyscore", key, opt, remote.Ascending)
	if err != nil {
		return redis.NewStringSliceResult(nil, err)
	}
	return redis.NewStringSliceResult(memberStrings(elements), nil)
}

func (c *Client) ZRangeByScoreWithScores(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.ZSliceCmd {
	elements, err := c.zFetchByScore(ctx, "zrangebyscore", key, opt, remote.Ascending)
	if err != nil {
		return redis.NewZSliceCmdResult(nil, err)
	}
	return redis.NewZSliceCmdResult(zSlice(elements), nil)
}

func (c *Client) ZRevRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	elements, err := c.zFetchByScore(ctx, "zrevrangebyscore", key, opt, remote.Descending)
	if err != nil {
		return redis.NewStringSliceResult(nil, err)
	}
	return redis.NewStringSliceResult(memberStrings(elements), nil)
}

func (c *Client) ZRevRangeByScoreWithScores(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.ZSliceCmd {
	elements, err := c.zFetchByScore(ctx, "zrevrangebyscore", key, opt, remote.Descending)
	if err != nil {
		return redis.NewZSliceCmdResult(nil, err)
	}
	return redis.NewZSliceCmdResult(zSlice(elements), nil)
}

func (c *Client) zRangeByRank(ctx context.Context, op, key string, start, stop int64, order remote.Order) *redis.StringSliceCmd {
	elements, err := c.zFetchByRank(ctx, op, key, start, stop, order)
	if err != nil {
		return redis.NewStringSliceResult(nil, err)
	}
	return redis.NewStringSliceResult(memberStrings(elements), nil)
}

func (c *Client) zRangeByRankWithScores(ctx context.Context, op, key string, start, stop int64, order remote.Order) *redis.ZSliceCmd {
	elements, err := c.zFetchByRank(ctx, op, key, start, stop, order)
	if err != nil {
		return redis.NewZSliceCmdResult(nil, err)
	}
	return redis.NewZSliceCmdResult(zSlice(elements), nil)
}

func (c *Client) zFetchByRank(ctx context.Context, op, key string, start, stop int64, order remote.Order) ([]remote.ScoredElement, error) {
	s, e := ranges.RankWindow(start, stop)
	rsp, err := c.remote.SortedSetFetchByRank(ctx, key, s, e, order)
	if err != nil {
		return nil, c.remoteErr(op, err)
	}
	return c.zFetched(op, rsp)
}

func (c *Client) zFetchByScore(ctx context.Context, op, key string, opt *redis.ZRangeBy, order remote.Order) ([]remote.ScoredElement, error) {
	min, err := c.scoreBound(op, opt.Min)
	if err != nil {
		return nil, err
	}
	max, err := c.scoreBound(op, opt.Max)
	if err != nil {
		return nil, err
	}
	var offset, count *uint32
	if opt.Offset > 0 {
		o := uint32(opt.Offset)
		offset = &o
	}
	if opt.Count > 0 {
		n := uint32(opt.Count)
		count = &n
	}
	rsp, err := c.remote.SortedSetFetchByScore(ctx, key, min, max, offset, count, order)
	if err != nil {
		return nil, c.remoteErr(op, err)
	}
	return c.zFetched(op, rsp)
}

func (c *Client) zFetched(op string, rsp remote.SortedSetFetchOutcome) ([]remote.ScoredElement, error) {
	switch r := rsp.(type) {
	case remote.SortedSetFetchHit:
		return r.Elements, nil
	case remote.SortedSetFetchMiss:
		return nil, nil
	default:
		return nil, c.badResponse(op, rsp)
	}
}

// scoreBound parses a go-redis score bound. "-inf"/"+inf" (and the empty
// string) are unbounded; "(" exclusive bounds cannot be expressed against
// the remote's inclusive bounds and fail with *NotImplementedError.
func (c *Client) scoreBound(op, bound string) (*float64, error) {
	switch strings.ToLower(bound) {
	case "", "-inf", "+inf", "inf":
		return nil, nil
	}
	if strings.HasPrefix(bound, "(") {
		return nil, c.notImplemented(strings.ToUpper(op) + " exclusive bound")
	}
	f, err := strconv.ParseFloat(bound, 64)
	if err != nil {
		return nil, fmt.Errorf("momentoredis: %s: bad score bound %q: %w", op, bound, err)
	}
	return &f, nil
}

func memberStrings(elements []remote.ScoredElement) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = string(e.Value)
	}
	return out
}

func zSlice(elements []remote.ScoredElement) []redis.Z {
	out := make([]redis.Z, len(elements))
	for i, e := range elements {
		out[i] = redis.Z{Score: e.Score, Member: string(e.Value)}
	}
	return out
}
