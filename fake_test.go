package momentoredis

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// memCache is an in-memory remote.Cache for tests. It records the TTL each
// Set requested so expiry translation can be asserted without sleeping, and
// forces errors per operation via fail.
type memValue struct {
	v   []byte
	ttl time.Duration
}

type memCache struct {
	mu     sync.Mutex
	kv     map[string]memValue
	hashes map[string]map[string][]byte
	sets   map[string]map[string]struct{}
	zsets  map[string]map[string]float64
	lists  map[string][][]byte

	fail    map[string]error // op name -> forced error
	created bool
	closed  bool
}

var _ remote.Cache = (*memCache)(nil)

func newMemCache() *memCache {
	return &memCache{
		kv:     make(map[string]memValue),
		hashes: make(map[string]map[string][]byte),
		sets:   make(map[string]map[string]struct{}),
		zsets:  make(map[string]map[string]float64),
		lists:  make(map[string][][]byte),
		fail:   make(map[string]error),
	}
}

func (m *memCache) failure(op string) error {
	if err, ok := m.fail[op]; ok {
		return err
	}
	return nil
}

func (m *memCache) CreateCache(context.Context) (remote.CreateOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("CreateCache"); err != nil {
		return nil, err
	}
	if m.created {
		return remote.CacheExists{}, nil
	}
	m.created = true
	return remote.CacheCreated{}, nil
}

func (m *memCache) Get(_ context.Context, key string) (remote.GetOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("Get"); err != nil {
		return nil, err
	}
	e, ok := m.kv[key]
	if !ok {
		return remote.GetMiss{}, nil
	}
	return remote.GetHit{Value: e.v}, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) (remote.SetOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("Set"); err != nil {
		return nil, err
	}
	m.kv[key] = memValue{v: value, ttl: ttl}
	return remote.SetSuccess{}, nil
}

func (m *memCache) SetIfAbsent(_ context.Context, key string, value []byte, ttl time.Duration) (remote.CondSetOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SetIfAbsent"); err != nil {
		return nil, err
	}
	if _, ok := m.kv[key]; ok {
		return remote.CondSetNotStored{}, nil
	}
	m.kv[key] = memValue{v: value, ttl: ttl}
	return remote.CondSetStored{}, nil
}

func (m *memCache) Delete(_ context.Context, key string) (remote.DeleteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("Delete"); err != nil {
		return nil, err
	}
	delete(m.kv, key)
	return remote.DeleteSuccess{}, nil
}

func (m *memCache) Increment(_ context.Context, key string, amount int64) (remote.IncrementOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("Increment"); err != nil {
		return nil, err
	}
	var n int64
	if e, ok := m.kv[key]; ok {
		n, _ = strconv.ParseInt(string(e.v), 10, 64)
	}
	n += amount
	m.kv[key] = memValue{v: strconv.AppendInt(nil, n, 10)}
	return remote.IncrementSuccess{Value: n}, nil
}

func (m *memCache) HashSet(_ context.Context, hash string, items map[string][]byte) (remote.WriteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashSet"); err != nil {
		return nil, err
	}
	h, ok := m.hashes[hash]
	if !ok {
		h = make(map[string][]byte)
		m.hashes[hash] = h
	}
	for f, v := range items {
		h[f] = v
	}
	return remote.WriteSuccess{}, nil
}

func (m *memCache) HashGet(_ context.Context, hash, field string) (remote.HashGetOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashGet"); err != nil {
		return nil, err
	}
	v, ok := m.hashes[hash][field]
	if !ok {
		return remote.HashGetMiss{}, nil
	}
	return remote.HashGetHit{Value: v}, nil
}

func (m *memCache) HashGetMulti(_ context.Context, hash string, fields []string) (remote.HashGetMultiOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashGetMulti"); err != nil {
		return nil, err
	}
	h, ok := m.hashes[hash]
	if !ok {
		return remote.HashGetMultiMiss{}, nil
	}
	out := make(map[string][]byte)
	for _, f := range fields {
		if v, ok := h[f]; ok {
			out[f] = v
		}
	}
	return remote.HashGetMultiHit{Values: out}, nil
}

func (m *memCache) HashFetch(_ context.Context, hash string) (remote.HashFetchOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashFetch"); err != nil {
		return nil, err
	}
	h, ok := m.hashes[hash]
	if !ok {
		return remote.HashFetchMiss{}, nil
	}
	out := make(map[string][]byte, len(h))
	for f, v := range h {
		out[f] = v
	}
	return remote.HashFetchHit{Items: out}, nil
}

func (m *memCache) HashRemove(_ context.Context, hash string, fields []string) (remote.WriteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashRemove"); err != nil {
		return nil, err
	}
	for _, f := range fields {
		delete(m.hashes[hash], f)
	}
	return remote.WriteSuccess{}, nil
}

func (m *memCache) HashIncrement(_ context.Context, hash, field string, amount int64) (remote.IncrementOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashIncrement"); err != nil {
		return nil, err
	}
	h, ok := m.hashes[hash]
	if !ok {
		h = make(map[string][]byte)
		m.hashes[hash] = h
	}
	var n int64
	if v, ok := h[field]; ok {
		n, _ = strconv.ParseInt(string(v), 10, 64)
	}
	n += amount
	h[field] = strconv.AppendInt(nil, n, 10)
	return remote.IncrementSuccess{Value: n}, nil
}

func (m *memCache) HashLength(_ context.Context, hash string) (remote.LengthOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("HashLength"); err != nil {
		return nil, err
	}
	h, ok := m.hashes[hash]
	if !ok {
		return remote.LengthMiss{}, nil
	}
	return remote.LengthHit{Length: int64(len(h))}, nil
}

func (m *memCache) SetAdd(_ context.Context, set string, elements [][]byte) (remote.WriteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SetAdd"); err != nil {
		return nil, err
	}
	s, ok := m.sets[set]
	if !ok {
		s = make(map[string]struct{})
		m.sets[set] = s
	}
	for _, e := range elements {
		s[string(e)] = struct{}{}
	}
	return remote.WriteSuccess{}, nil
}

func (m *memCache) SetRemove(_ context.Context, set string, elements [][]byte) (remote.WriteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SetRemove"); err != nil {
		return nil, err
	}
	for _, e := range elements {
		delete(m.sets[set], string(e))
	}
	return remote.WriteSuccess{}, nil
}

func (m *memCache) SetFetch(_ context.Context, set string) (remote.SetFetchOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SetFetch"); err != nil {
		return nil, err
	}
	s, ok := m.sets[set]
	if !ok {
		return remote.SetFetchMiss{}, nil
	}
	out := make([][]byte, 0, len(s))
	for e := range s {
		out = append(out, []byte(e))
	}
	return remote.SetFetchHit{Elements: out}, nil
}

func (m *memCache) SortedSetPut(_ context.Context, name string, elements []remote.ScoredElement) (remote.WriteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SortedSetPut"); err != nil {
		return nil, err
	}
	z, ok := m.zsets[name]
	if !ok {
		z = make(map[string]float64)
		m.zsets[name] = z
	}
	for _, e := range elements {
		z[string(e.Value)] = e.Score
	}
	return remote.WriteSuccess{}, nil
}

func (m *memCache) SortedSetIncrement(_ context.Context, name string, member []byte, amount float64) (remote.ScoreOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SortedSetIncrement"); err != nil {
		return nil, err
	}
	z, ok := m.zsets[name]
	if !ok {
		z = make(map[string]float64)
		m.zsets[name] = z
	}
	z[string(member)] += amount
	return remote.ScoreSuccess{Score: z[string(member)]}, nil
}

func (m *memCache) SortedSetRemove(_ context.Context, name string, members [][]byte) (remote.WriteOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SortedSetRemove"); err != nil {
		return nil, err
	}
	for _, e := range members {
		delete(m.zsets[name], string(e))
	}
	return remote.WriteSuccess{}, nil
}

// ordered returns the sorted set elements by ascending score (ties broken
// lexically), reversed when order is Descending.
func (m *memCache) ordered(name string, order remote.Order) ([]remote.ScoredElement, bool) {
	z, ok := m.zsets[name]
	if !ok {
		return nil, false
	}
	out := make([]remote.ScoredElement, 0, len(z))
	for v, s := range z {
		out = append(out, remote.ScoredElement{Value: []byte(v), Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return string(out[i].Value) < string(out[j].Value)
	})
	if order == remote.Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, true
}

func (m *memCache) SortedSetFetchByRank(_ context.Context, name string, start, end *int32, order remote.Order) (remote.SortedSetFetchOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SortedSetFetchByRank"); err != nil {
		return nil, err
	}
	all, ok := m.ordered(name, order)
	if !ok {
		return remote.SortedSetFetchMiss{}, nil
	}
	n := len(all)
	lo, hi := 0, n
	if start != nil {
		lo = int(*start)
		if lo < 0 {
			lo += n
		}
	}
	if end != nil {
		hi = int(*end)
		if hi < 0 {
			hi += n
		}
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return remote.SortedSetFetchHit{}, nil
	}
	return remote.SortedSetFetchHit{Elements: all[lo:hi]}, nil
}

func (m *memCache) SortedSetFetchByScore(_ context.Context, name string, min, max *float64, offset, count *uint32, order remote.Order) (remote.SortedSetFetchOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("SortedSetFetchByScore"); err != nil {
		return nil, err
	}
	all, ok := m.ordered(name, order)
	if !ok {
		return remote.SortedSetFetchMiss{}, nil
	}
	out := make([]remote.ScoredElement, 0, len(all))
	for _, e := range all {
		if min != nil && e.Score < *min {
			continue
		}
		if max != nil && e.Score > *max {
			continue
		}
		out = append(out, e)
	}
	if offset != nil {
		if int(*offset) >= len(out) {
			out = nil
		} else {
			out = out[*offset:]
		}
	}
	if count != nil && int(*count) < len(out) {
		out = out[:*count]
	}
	return remote.SortedSetFetchHit{Elements: out}, nil
}

func (m *memCache) ListPushFront(_ context.Context, list string, values [][]byte) (remote.ListPushOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListPushFront"); err != nil {
		return nil, err
	}
	m.lists[list] = append(append([][]byte{}, values...), m.lists[list]...)
	return remote.ListPushSuccess{Length: int64(len(m.lists[list]))}, nil
}

func (m *memCache) ListPushBack(_ context.Context, list string, values [][]byte) (remote.ListPushOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListPushBack"); err != nil {
		return nil, err
	}
	m.lists[list] = append(m.lists[list], values...)
	return remote.ListPushSuccess{Length: int64(len(m.lists[list]))}, nil
}

func (m *memCache) ListPopFront(_ context.Context, list string) (remote.ListPopOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListPopFront"); err != nil {
		return nil, err
	}
	l := m.lists[list]
	if len(l) == 0 {
		return remote.ListPopMiss{}, nil
	}
	m.lists[list] = l[1:]
	return remote.ListPopHit{Value: l[0]}, nil
}

func (m *memCache) ListPopBack(_ context.Context, list string) (remote.ListPopOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListPopBack"); err != nil {
		return nil, err
	}
	l := m.lists[list]
	if len(l) == 0 {
		return remote.ListPopMiss{}, nil
	}
	m.lists[list] = l[:len(l)-1]
	return remote.ListPopHit{Value: l[len(l)-1]}, nil
}

func (m *memCache) ListLength(_ context.Context, list string) (remote.LengthOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListLength"); err != nil {
		return nil, err
	}
	l, ok := m.lists[list]
	if !ok {
		return remote.LengthMiss{}, nil
	}
	return remote.LengthHit{Length: int64(len(l))}, nil
}

func (m *memCache) ListFetch(_ context.Context, list string) (remote.ListFetchOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListFetch"); err != nil {
		return nil, err
	}
	l, ok := m.lists[list]
	if !ok {
		return remote.ListFetchMiss{}, nil
	}
	return remote.ListFetchHit{Values: append([][]byte{}, l...)}, nil
}

func (m *memCache) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func newTestClient(t *testing.T, rc remote.Cache, optsOpt func(*Options)) *Client {
	t.Helper()
	opts := Options{Remote: rc}
	if optsOpt != nil {
		optsOpt(&opts)
	}
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
