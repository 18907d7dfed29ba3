// Package remote defines the storage abstraction momentoredis delegates to.
//
// Every operation returns a closed set of outcome variants (hit/miss,
// stored/not-stored, success) plus an error. Implementations MUST return
// exactly one variant from the operation's set; callers treat anything else
// as a defect. Values are opaque bytes: implementations must not transcode,
// trim, or otherwise mutate payloads between Set and Get.
//
// Failures are reported through *Error so the caller can map the underlying
// cause (timeout, authentication, unavailable) without importing the vendor
// SDK.
package remote

import (
	"context"
	"fmt"
	"time"
)

// Order selects the traversal direction for sorted set fetches.
type Order int

const (
	Ascending Order = iota
	Descending
)

// ScoredElement is one sorted set member with its score.
type ScoredElement struct {
	Value []byte
	Score float64
}

// ErrorCode classifies the underlying cause of a remote failure.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeTimeout
	CodeAuthentication
	CodeUnavailable
	CodeInvalidArgument
)

func (c ErrorCode) String() string {
	switch c {
	case CodeTimeout:
		return "timeout"
	case CodeAuthentication:
		return "authentication"
	case CodeUnavailable:
		return "unavailable"
	case CodeInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Error wraps a remote failure with its cause class.
type Error struct {
	Code  ErrorCode
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote %s (%s): %v", e.Op, e.Code, e.Cause)
	}
	return fmt.Sprintf("remote %s (%s)", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Cause }

// Outcome variants. Each operation's result type is a sealed interface;
// the concrete variants below are the only implementations.

type GetOutcome interface{ isGet() }

// GetHit carries the raw payload previously stored under the key.
type GetHit struct{ Value []byte }

// GetMiss means the key is absent or expired. A miss is not an error.
type GetMiss struct{}

func (GetHit) isGet()  {}
func (GetMiss) isGet() {}

type SetOutcome interface{ isSet() }

type SetSuccess struct{}

func (SetSuccess) isSet() {}

type CondSetOutcome interface{ isCondSet() }

// CondSetStored means the conditional write won; CondSetNotStored means the
// key already existed and the value was left untouched.
type (
	CondSetStored    struct{}
	CondSetNotStored struct{}
)

func (CondSetStored) isCondSet()    {}
func (CondSetNotStored) isCondSet() {}

type DeleteOutcome interface{ isDelete() }

// DeleteSuccess is returned whether or not the key existed; the remote
// delete is idempotent and does not report prior presence.
type DeleteSuccess struct{}

func (DeleteSuccess) isDelete() {}

type IncrementOutcome interface{ isIncrement() }

// IncrementSuccess carries the post-increment value.
type IncrementSuccess struct{ Value int64 }

func (IncrementSuccess) isIncrement() {}

// WriteSuccess is the single variant for unconditional batched mutations
// (dictionary set/remove fields, set add/remove, sorted set put/remove).
type WriteOutcome interface{ isWrite() }

type WriteSuccess struct{}

func (WriteSuccess) isWrite() {}

type HashGetOutcome interface{ isHashGet() }

type (
	HashGetHit  struct{ Value []byte }
	HashGetMiss struct{}
)

func (HashGetHit) isHashGet()  {}
func (HashGetMiss) isHashGet() {}

type HashGetMultiOutcome interface{ isHashGetMulti() }

// HashGetMultiHit maps each present field to its value; requested fields
// that are absent from the dictionary are simply not in the map.
type (
	HashGetMultiHit  struct{ Values map[string][]byte }
	HashGetMultiMiss struct{}
)

func (HashGetMultiHit) isHashGetMulti()  {}
func (HashGetMultiMiss) isHashGetMulti() {}

type HashFetchOutcome interface{ isHashFetch() }

type (
	HashFetchHit  struct{ Items map[string][]byte }
	HashFetchMiss struct{}
)

func (HashFetchHit) isHashFetch()  {}
func (HashFetchMiss) isHashFetch() {}

type LengthOutcome interface{ isLength() }

type (
	LengthHit  struct{ Length int64 }
	LengthMiss struct{}
)

func (LengthHit) isLength()  {}
func (LengthMiss) isLength() {}

type SetFetchOutcome interface{ isSetFetch() }

type (
	SetFetchHit  struct{ Elements [][]byte }
	SetFetchMiss struct{}
)

func (SetFetchHit) isSetFetch()  {}
func (SetFetchMiss) isSetFetch() {}

type SortedSetFetchOutcome interface{ isSortedSetFetch() }

// SortedSetFetchHit carries elements already ordered by the requested
// direction.
type (
	SortedSetFetchHit  struct{ Elements []ScoredElement }
	SortedSetFetchMiss struct{}
)

func (SortedSetFetchHit) isSortedSetFetch()  {}
func (SortedSetFetchMiss) isSortedSetFetch() {}

type ScoreOutcome interface{ isScore() }

// ScoreSuccess carries the post-increment score.
type ScoreSuccess struct{ Score float64 }

func (ScoreSuccess) isScore() {}

type ListPushOutcome interface{ isListPush() }

// ListPushSuccess carries the list length after the push.
type ListPushSuccess struct{ Length int64 }

func (ListPushSuccess) isListPush() {}

type ListPopOutcome interface{ isListPop() }

type (
	ListPopHit  struct{ Value []byte }
	ListPopMiss struct{}
)

func (ListPopHit) isListPop()  {}
func (ListPopMiss) isListPop() {}

type ListFetchOutcome interface{ isListFetch() }

type (
	ListFetchHit  struct{ Values [][]byte }
	ListFetchMiss struct{}
)

func (ListFetchHit) isListFetch()  {}
func (ListFetchMiss) isListFetch() {}

type CreateOutcome interface{ isCreate() }

// CacheCreated and CacheExists are both success: cache creation is
// create-or-exists idempotent.
type (
	CacheCreated struct{}
	CacheExists  struct{}
)

func (CacheCreated) isCreate() {}
func (CacheExists) isCreate()  {}

// Cache is a handle to one named cache on the remote service. A zero ttl
// means "use the client's default TTL". Implementations must be safe for
// concurrent use; momentoredis issues batched commands concurrently.
type Cache interface {
	CreateCache(ctx context.Context) (CreateOutcome, error)

	// Scalars
	Get(ctx context.Context, key string) (GetOutcome, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) (SetOutcome, error)
	SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (CondSetOutcome, error)
	Delete(ctx context.Context, key string) (DeleteOutcome, error)
	Increment(ctx context.Context, key string, amount int64) (IncrementOutcome, error)

	// Dictionaries
	HashSet(ctx context.Context, hash string, items map[string][]byte) (WriteOutcome, error)
	HashGet(ctx context.Context, hash, field string) (HashGetOutcome, error)
	HashGetMulti(ctx context.Context, hash string, fields []string) (HashGetMultiOutcome, error)
	HashFetch(ctx context.Context, hash string) (HashFetchOutcome, error)
	HashRemove(ctx context.Context, hash string, fields []string) (WriteOutcome, error)
	HashIncrement(ctx context.Context, hash, field string, amount int64) (IncrementOutcome, error)
	HashLength(ctx context.Context, hash string) (LengthOutcome, error)

	// Sets
	SetAdd(ctx context.Context, set string, elements [][]byte) (WriteOutcome, error)
	SetRemove(ctx context.Context, set string, elements [][]byte) (WriteOutcome, error)
	SetFetch(ctx context.Context, set string) (SetFetchOutcome, error)

	// Sorted sets
	SortedSetPut(ctx context.Context, name string, elements []ScoredElement) (WriteOutcome, error)
	SortedSetIncrement(ctx context.Context, name string, member []byte, amount float64) (ScoreOutcome, error)
	SortedSetRemove(ctx context.Context, name string, members [][]byte) (WriteOutcome, error)
	// SortedSetFetchByRank uses half-open rank windows: start inclusive,
	// end exclusive; nil means unbounded on that side.
	SortedSetFetchByRank(ctx context.Context, name string, start, end *int32, order Order) (SortedSetFetchOutcome, error)
	// SortedSetFetchByScore bounds are inclusive; nil means unbounded.
	SortedSetFetchByScore(ctx context.Context, name string, min, max *float64, offset, count *uint32, order Order) (SortedSetFetchOutcome, error)

	// Lists
	ListPushFront(ctx context.Context, list string, values [][]byte) (ListPushOutcome, error)
	ListPushBack(ctx context.Context, list string, values [][]byte) (ListPushOutcome, error)
	ListPopFront(ctx context.Context, list string) (ListPopOutcome, error)
	ListPopBack(ctx context.Context, list string) (ListPopOutcome, error)
	ListLength(ctx context.Context, list string) (LengthOutcome, error)
	ListFetch(ctx context.Context, list string) (ListFetchOutcome, error)

	// Close releases the underlying client if this handle owns it.
	Close(ctx context.Context) error
}
