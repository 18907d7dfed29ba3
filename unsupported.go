package momentoredis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// The long tail of redis commands has no remote equivalent. Every stub here
// fails with *NotImplementedError naming the command, so a caller migrating
// from a real redis client finds out at the call site instead of silently
// losing behavior.

// Do is the catch-all for ad hoc commands. The first argument names the
// command; it always fails with *NotImplementedError.
func (c *Client) Do(ctx context.Context, args ...interface{}) *redis.Cmd {
	name := "DO"
	if len(args) > 0 {
		name = strings.ToUpper(fmt.Sprint(args[0]))
	}
	cmd := redis.NewCmd(ctx, args...)
	cmd.SetErr(c.notImplemented(name))
	return cmd
}

// Key management

func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("EXISTS"))
}

func (c *Client) Expire(ctx context.Context, key string, expiration interface{}) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("EXPIRE"))
}

func (c *Client) ExpireAt(ctx context.Context, key string, tm interface{}) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("EXPIREAT"))
}

func (c *Client) Persist(ctx context.Context, key string) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("PERSIST"))
}

func (c *Client) TTL(ctx context.Context, key string) *redis.DurationCmd {
	return redis.NewDurationResult(0, c.notImplemented("TTL"))
}

func (c *Client) PTTL(ctx context.Context, key string) *redis.DurationCmd {
	return redis.NewDurationResult(0, c.notImplemented("PTTL"))
}

func (c *Client) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("KEYS"))
}

func (c *Client) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	return redis.NewScanCmdResult(nil, 0, c.notImplemented("SCAN"))
}

func (c *Client) Rename(ctx context.Context, key, newkey string) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("RENAME"))
}

func (c *Client) RandomKey(ctx context.Context) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("RANDOMKEY"))
}

func (c *Client) Type(ctx context.Context, key string) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("TYPE"))
}

func (c *Client) Dump(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("DUMP"))
}

func (c *Client) Touch(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("TOUCH"))
}

func (c *Client) Unlink(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("UNLINK"))
}

// Strings beyond the supported subset

func (c *Client) Append(ctx context.Context, key, value string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("APPEND"))
}

func (c *Client) GetRange(ctx context.Context, key string, start, end int64) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("GETRANGE"))
}

func (c *Client) SetRange(ctx context.Context, key string, offset int64, value string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("SETRANGE"))
}

func (c *Client) GetDel(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("GETDEL"))
}

func (c *Client) GetSet(ctx context.Context, key string, value interface{}) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("GETSET"))
}

func (c *Client) StrLen(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("STRLEN"))
}

func (c *Client) IncrByFloat(ctx context.Context, key string, value float64) *redis.FloatCmd {
	return redis.NewFloatResult(0, c.notImplemented("INCRBYFLOAT"))
}

func (c *Client) MSetNX(ctx context.Context, values ...interface{}) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("MSETNX"))
}

// Bit operations

func (c *Client) SetBit(ctx context.Context, key string, offset int64, value int) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("SETBIT"))
}

func (c *Client) GetBit(ctx context.Context, key string, offset int64) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("GETBIT"))
}

func (c *Client) BitCount(ctx context.Context, key string, bitCount *redis.BitCount) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("BITCOUNT"))
}

// Structure commands beyond the supported subset

func (c *Client) HExists(ctx context.Context, key, field string) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("HEXISTS"))
}

func (c *Client) HSetNX(ctx context.Context, key, field string, value interface{}) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("HSETNX"))
}

func (c *Client) HRandField(ctx context.Context, key string, count int) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("HRANDFIELD"))
}

func (c *Client) SCard(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("SCARD"))
}

func (c *Client) SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd {
	return redis.NewBoolResult(false, c.notImplemented("SISMEMBER"))
}

func (c *Client) SPop(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("SPOP"))
}

func (c *Client) SUnion(ctx context.Context, keys ...string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("SUNION"))
}

func (c *Client) SInter(ctx context.Context, keys ...string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("SINTER"))
}

func (c *Client) SDiff(ctx context.Context, keys ...string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("SDIFF"))
}

func (c *Client) ZCard(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("ZCARD"))
}

func (c *Client) ZScore(ctx context.Context, key, member string) *redis.FloatCmd {
	return redis.NewFloatResult(0, c.notImplemented("ZSCORE"))
}

func (c *Client) ZRank(ctx context.Context, key, member string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("ZRANK"))
}

func (c *Client) ZCount(ctx context.Context, key, min, max string) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("ZCOUNT"))
}

func (c *Client) ZRangeByLex(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("ZRANGEBYLEX"))
}

func (c *Client) LIndex(ctx context.Context, key string, index int64) *redis.StringCmd {
	return redis.NewStringResult("", c.notImplemented("LINDEX"))
}

func (c *Client) LInsert(ctx context.Context, key, op string, pivot, value interface{}) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("LINSERT"))
}

func (c *Client) LRem(ctx context.Context, key string, count int64, value interface{}) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("LREM"))
}

func (c *Client) LSet(ctx context.Context, key string, index int64, value interface{}) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("LSET"))
}

func (c *Client) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("LTRIM"))
}

func (c *Client) BLPop(ctx context.Context, timeout interface{}, keys ...string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("BLPOP"))
}

func (c *Client) BRPop(ctx context.Context, timeout interface{}, keys ...string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, c.notImplemented("BRPOP"))
}

// Server, scripting, pubsub, transactions

func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("PING"))
}

func (c *Client) FlushDB(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("FLUSHDB"))
}

func (c *Client) FlushAll(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("", c.notImplemented("FLUSHALL"))
}

func (c *Client) DBSize(ctx context.Context) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("DBSIZE"))
}

func (c *Client) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return redis.NewCmdResult(nil, c.notImplemented("EVAL"))
}

func (c *Client) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return redis.NewCmdResult(nil, c.notImplemented("EVALSHA"))
}

func (c *Client) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	return redis.NewIntResult(0, c.notImplemented("PUBLISH"))
}

func (c *Client) TxPipeline(ctx context.Context) (redis.Pipeliner, error) {
	return nil, c.notImplemented("MULTI")
}

func (c *Client) Pipeline(ctx context.Context) (redis.Pipeliner, error) {
	return nil, c.notImplemented("PIPELINE")
}

func (c *Client) Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	return c.notImplemented("WATCH")
}
