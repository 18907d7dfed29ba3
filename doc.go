// Package momentoredis presents the go-redis calling convention on top of
// Momento Cache, so code written against a redis client can switch backends
// by swapping the client value. Supported commands keep go-redis semantics:
// misses return redis.Nil, SET option ladders (EX/PX/EXAT/PXAT/NX) are
// honored, and multi-key commands fan out concurrently.
//
// Components:
//   - Cmdable: the exposed command surface, split into per-family
//     capability interfaces (StringCmdable, HashCmdable, ...).
//   - remote.Cache: the storage abstraction every command delegates to.
//     remote/momento adapts the Momento SDK to it.
//   - Hooks / Logger: observation points for unsupported commands, remote
//     failures, and unknown response variants.
//
// Divergences from redis are loud, never silent:
//   - commands with no Momento equivalent fail with *NotImplementedError
//   - mutation counts on multi-element writes reflect the elements sent,
//     not a verified changed-count (Momento does not report one)
//   - PX/PXAT precision truncates to whole seconds
//
// Typical use:
//
//	cache, _ := momento.NewFromEnv("my-cache")
//	client, _ := momentoredis.New(momentoredis.Options{Remote: cache})
//	val, err := client.Get(ctx, "k").Result()
package momentoredis
