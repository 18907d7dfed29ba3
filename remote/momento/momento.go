// Package momento adapts the Momento Cache SDK to the remote.Cache
// abstraction. Each method issues one SDK call, then maps the SDK's typed
// response onto the operation's outcome set. A response variant the switch
// does not recognize is reported as a CodeUnknown error, never dropped.
package momento

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momentohq/client-sdk-go/auth"
	"github.com/momentohq/client-sdk-go/config"
	sdk "github.com/momentohq/client-sdk-go/momento"
	"github.com/momentohq/client-sdk-go/responses"

	"github.com/unkn0wn-root/momentoredis/remote"
)

var (
	ErrNilClient     = errors.New("momento remote: nil client")
	ErrNoCacheName   = errors.New("momento remote: cache name is required")
	ErrEmptyElements = errors.New("momento remote: empty element batch")
)

// Cache is a remote.Cache backed by one named Momento cache.
type Cache struct {
	client      sdk.CacheClient
	cacheName   string
	closeClient bool
}

var _ remote.Cache = (*Cache)(nil)

type Config struct {
	Client      sdk.CacheClient
	CacheName   string
	CloseClient bool // set true only if this handle exclusively owns the client
}

func New(cfg Config) (*Cache, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.CacheName == "" {
		return nil, ErrNoCacheName
	}
	return &Cache{client: cfg.Client, cacheName: cfg.CacheName, closeClient: cfg.CloseClient}, nil
}

// NewFromEnv builds an SDK client from the MOMENTO_API_KEY environment
// variable with laptop-profile defaults. The returned Cache owns the client.
func NewFromEnv(cacheName string, defaultTTL time.Duration) (*Cache, error) {
	credential, err := auth.NewEnvMomentoTokenProvider("MOMENTO_API_KEY")
	if err != nil {
		return nil, fmt.Errorf("momento remote: credential: %w", err)
	}
	client, err := sdk.NewCacheClient(config.LaptopLatest(), credential, defaultTTL)
	if err != nil {
		return nil, fmt.Errorf("momento remote: client: %w", err)
	}
	return New(Config{Client: client, CacheName: cacheName, CloseClient: true})
}

func (c *Cache) CreateCache(ctx context.Context) (remote.CreateOutcome, error) {
	rsp, err := c.client.CreateCache(ctx, &sdk.CreateCacheRequest{CacheName: c.cacheName})
	if err != nil {
		return nil, c.wrap("create_cache", err)
	}
	switch rsp.(type) {
	case *responses.CreateCacheSuccess:
		return remote.CacheCreated{}, nil
	case *responses.CreateCacheAlreadyExists:
		return remote.CacheExists{}, nil
	default:
		return nil, unexpected("create_cache", rsp)
	}
}

func (c *Cache) Get(ctx context.Context, key string) (remote.GetOutcome, error) {
	rsp, err := c.client.Get(ctx, &sdk.GetRequest{CacheName: c.cacheName, Key: sdk.String(key)})
	if err != nil {
		return nil, c.wrap("get", err)
	}
	switch r := rsp.(type) {
	case *responses.GetHit:
		return remote.GetHit{Value: r.ValueByte()}, nil
	case *responses.GetMiss:
		return remote.GetMiss{}, nil
	default:
		return nil, unexpected("get", rsp)
	}
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) (remote.SetOutcome, error) {
	rsp, err := c.client.Set(ctx, &sdk.SetRequest{
		CacheName: c.cacheName,
		Key:       sdk.String(key),
		Value:     sdk.Bytes(value),
		Ttl:       ttl,
	})
	if err != nil {
		return nil, c.wrap("set", err)
	}
	switch rsp.(type) {
	case *responses.SetSuccess:
		return remote.SetSuccess{}, nil
	default:
		return nil, unexpected("set", rsp)
	}
}

func (c *Cache) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (remote.CondSetOutcome, error) {
	rsp, err := c.client.SetIfAbsent(ctx, &sdk.SetIfAbsentRequest{
		CacheName: c.cacheName,
		Key:       sdk.String(key),
		Value:     sdk.Bytes(value),
		Ttl:       ttl,
	})
	if err != nil {
		return nil, c.wrap("set_if_absent", err)
	}
	switch rsp.(type) {
	case *responses.SetIfAbsentStored:
		return remote.CondSetStored{}, nil
	case *responses.SetIfAbsentNotStored:
		return remote.CondSetNotStored{}, nil
	default:
		return nil, unexpected("set_if_absent", rsp)
	}
}

func (c *Cache) Delete(ctx context.Context, key string) (remote.DeleteOutcome, error) {
	rsp, err := c.client.Delete(ctx, &sdk.DeleteRequest{CacheName: c.cacheName, Key: sdk.String(key)})
	if err != nil {
		return nil, c.wrap("delete", err)
	}
	switch rsp.(type) {
	case *responses.DeleteSuccess:
		return remote.DeleteSuccess{}, nil
	default:
		return nil, unexpected("delete", rsp)
	}
}

func (c *Cache) Increment(ctx context.Context, key string, amount int64) (remote.IncrementOutcome, error) {
	rsp, err := c.client.Increment(ctx, &sdk.IncrementRequest{
		CacheName: c.cacheName,
		Field:     sdk.String(key),
		Amount:    amount,
	})
	if err != nil {
		return nil, c.wrap("increment", err)
	}
	switch r := rsp.(type) {
	case *responses.IncrementSuccess:
		return remote.IncrementSuccess{Value: r.Value()}, nil
	default:
		return nil, unexpected("increment", rsp)
	}
}

func (c *Cache) HashSet(ctx context.Context, hash string, items map[string][]byte) (remote.WriteOutcome, error) {
	if len(items) == 0 {
		return nil, &remote.Error{Code: remote.CodeInvalidArgument, Op: "dictionary_set_fields", Cause: ErrEmptyElements}
	}
	elements := make([]sdk.DictionaryElement, 0, len(items))
	for f, v := range items {
		elements = append(elements, sdk.DictionaryElement{Field: sdk.String(f), Value: sdk.Bytes(v)})
	}
	rsp, err := c.client.DictionarySetFields(ctx, &sdk.DictionarySetFieldsRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
		Elements:       elements,
	})
	if err != nil {
		return nil, c.wrap("dictionary_set_fields", err)
	}
	switch rsp.(type) {
	case *responses.DictionarySetFieldsSuccess:
		return remote.WriteSuccess{}, nil
	default:
		return nil, unexpected("dictionary_set_fields", rsp)
	}
}

func (c *Cache) HashGet(ctx context.Context, hash, field string) (remote.HashGetOutcome, error) {
	rsp, err := c.client.DictionaryGetField(ctx, &sdk.DictionaryGetFieldRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
		Field:          sdk.String(field),
	})
	if err != nil {
		return nil, c.wrap("dictionary_get_field", err)
	}
	switch r := rsp.(type) {
	case *responses.DictionaryGetFieldHit:
		return remote.HashGetHit{Value: r.ValueByte()}, nil
	case *responses.DictionaryGetFieldMiss:
		return remote.HashGetMiss{}, nil
	default:
		return nil, unexpected("dictionary_get_field", rsp)
	}
}

func (c *Cache) HashGetMulti(ctx context.Context, hash string, fields []string) (remote.HashGetMultiOutcome, error) {
	rsp, err := c.client.DictionaryGetFields(ctx, &sdk.DictionaryGetFieldsRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
		Fields:         values(fields),
	})
	if err != nil {
		return nil, c.wrap("dictionary_get_fields", err)
	}
	switch r := rsp.(type) {
	case *responses.DictionaryGetFieldsHit:
		return remote.HashGetMultiHit{Values: byteMap(r.ValueMap())}, nil
	case *responses.DictionaryGetFieldsMiss:
		return remote.HashGetMultiMiss{}, nil
	default:
		return nil, unexpected("dictionary_get_fields", rsp)
	}
}

func (c *Cache) HashFetch(ctx context.Context, hash string) (remote.HashFetchOutcome, error) {
	rsp, err := c.client.DictionaryFetch(ctx, &sdk.DictionaryFetchRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
	})
	if err != nil {
		return nil, c.wrap("dictionary_fetch", err)
	}
	switch r := rsp.(type) {
	case *responses.DictionaryFetchHit:
		return remote.HashFetchHit{Items: byteMap(r.ValueMap())}, nil
	case *responses.DictionaryFetchMiss:
		return remote.HashFetchMiss{}, nil
	default:
		return nil, unexpected("dictionary_fetch", rsp)
	}
}

func (c *Cache) HashRemove(ctx context.Context, hash string, fields []string) (remote.WriteOutcome, error) {
	rsp, err := c.client.DictionaryRemoveFields(ctx, &sdk.DictionaryRemoveFieldsRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
		Fields:         values(fields),
	})
	if err != nil {
		return nil, c.wrap("dictionary_remove_fields", err)
	}
	switch rsp.(type) {
	case *responses.DictionaryRemoveFieldsSuccess:
		return remote.WriteSuccess{}, nil
	default:
		return nil, unexpected("dictionary_remove_fields", rsp)
	}
}

func (c *Cache) HashIncrement(ctx context.Context, hash, field string, amount int64) (remote.IncrementOutcome, error) {
	rsp, err := c.client.DictionaryIncrement(ctx, &sdk.DictionaryIncrementRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
		Field:          sdk.String(field),
		Amount:         amount,
	})
	if err != nil {
		return nil, c.wrap("dictionary_increment", err)
	}
	switch r := rsp.(type) {
	case *responses.DictionaryIncrementSuccess:
		return remote.IncrementSuccess{Value: r.Value()}, nil
	default:
		return nil, unexpected("dictionary_increment", rsp)
	}
}

func (c *Cache) HashLength(ctx context.Context, hash string) (remote.LengthOutcome, error) {
	rsp, err := c.client.DictionaryLength(ctx, &sdk.DictionaryLengthRequest{
		CacheName:      c.cacheName,
		DictionaryName: hash,
	})
	if err != nil {
		return nil, c.wrap("dictionary_length", err)
	}
	switch r := rsp.(type) {
	case *responses.DictionaryLengthHit:
		return remote.LengthHit{Length: int64(r.Length())}, nil
	case *responses.DictionaryLengthMiss:
		return remote.LengthMiss{}, nil
	default:
		return nil, unexpected("dictionary_length", rsp)
	}
}

func (c *Cache) SetAdd(ctx context.Context, set string, elements [][]byte) (remote.WriteOutcome, error) {
	rsp, err := c.client.SetAddElements(ctx, &sdk.SetAddElementsRequest{
		CacheName: c.cacheName,
		SetName:   set,
		Elements:  byteValues(elements),
	})
	if err != nil {
		return nil, c.wrap("set_add_elements", err)
	}
	switch rsp.(type) {
	case *responses.SetAddElementsSuccess:
		return remote.WriteSuccess{}, nil
	default:
		return nil, unexpected("set_add_elements", rsp)
	}
}

func (c *Cache) SetRemove(ctx context.Context, set string, elements [][]byte) (remote.WriteOutcome, error) {
	rsp, err := c.client.SetRemoveElements(ctx, &sdk.SetRemoveElementsRequest{
		CacheName: c.cacheName,
		SetName:   set,
		Elements:  byteValues(elements),
	})
	if err != nil {
		return nil, c.wrap("set_remove_elements", err)
	}
	switch rsp.(type) {
	case *responses.SetRemoveElementsSuccess:
		return remote.WriteSuccess{}, nil
	default:
		return nil, unexpected("set_remove_elements", rsp)
	}
}

func (c *Cache) SetFetch(ctx context.Context, set string) (remote.SetFetchOutcome, error) {
	rsp, err := c.client.SetFetch(ctx, &sdk.SetFetchRequest{CacheName: c.cacheName, SetName: set})
	if err != nil {
		return nil, c.wrap("set_fetch", err)
	}
	switch r := rsp.(type) {
	case *responses.SetFetchHit:
		members := r.ValueString()
		out := make([][]byte, len(members))
		for i, m := range members {
			out[i] = []byte(m)
		}
		return remote.SetFetchHit{Elements: out}, nil
	case *responses.SetFetchMiss:
		return remote.SetFetchMiss{}, nil
	default:
		return nil, unexpected("set_fetch", rsp)
	}
}

func (c *Cache) SortedSetPut(ctx context.Context, name string, elements []remote.ScoredElement) (remote.WriteOutcome, error) {
	put := make([]sdk.SortedSetElement, len(elements))
	for i, e := range elements {
		put[i] = sdk.SortedSetElement{Value: sdk.Bytes(e.Value), Score: e.Score}
	}
	rsp, err := c.client.SortedSetPutElements(ctx, &sdk.SortedSetPutElementsRequest{
		CacheName: c.cacheName,
		SetName:   name,
		Elements:  put,
	})
	if err != nil {
		return nil, c.wrap("sorted_set_put_elements", err)
	}
	switch rsp.(type) {
	case *responses.SortedSetPutElementsSuccess:
		return remote.WriteSuccess{}, nil
	default:
		return nil, unexpected("sorted_set_put_elements", rsp)
	}
}

func (c *Cache) SortedSetIncrement(ctx context.Context, name string, member []byte, amount float64) (remote.ScoreOutcome, error) {
	rsp, err := c.client.SortedSetIncrementScore(ctx, &sdk.SortedSetIncrementScoreRequest{
		CacheName: c.cacheName,
		SetName:   name,
		Value:     sdk.Bytes(member),
		Amount:    amount,
	})
	if err != nil {
		return nil, c.wrap("sorted_set_increment_score", err)
	}
	switch r := rsp.(type) {
	case *responses.SortedSetIncrementScoreSuccess:
		return remote.ScoreSuccess{Score: r.Score()}, nil
	default:
		return nil, unexpected("sorted_set_increment_score", rsp)
	}
}

func (c *Cache) SortedSetRemove(ctx context.Context, name string, members [][]byte) (remote.WriteOutcome, error) {
	rsp, err := c.client.SortedSetRemoveElements(ctx, &sdk.SortedSetRemoveElementsRequest{
		CacheName: c.cacheName,
		SetName:   name,
		Values:    byteValues(members),
	})
	if err != nil {
		return nil, c.wrap("sorted_set_remove_elements", err)
	}
	switch rsp.(type) {
	case *responses.SortedSetRemoveElementsSuccess:
		return remote.WriteSuccess{}, nil
	default:
		return nil, unexpected("sorted_set_remove_elements", rsp)
	}
}

func (c *Cache) SortedSetFetchByRank(ctx context.Context, name string, start, end *int32, order remote.Order) (remote.SortedSetFetchOutcome, error) {
	rsp, err := c.client.SortedSetFetchByRank(ctx, &sdk.SortedSetFetchByRankRequest{
		CacheName: c.cacheName,
		SetName:   name,
		Order:     sortOrder(order),
		StartRank: start,
		EndRank:   end,
	})
	if err != nil {
		return nil, c.wrap("sorted_set_fetch_by_rank", err)
	}
	return sortedSetFetch("sorted_set_fetch_by_rank", rsp)
}

func (c *Cache) SortedSetFetchByScore(ctx context.Context, name string, min, max *float64, offset, count *uint32, order remote.Order) (remote.SortedSetFetchOutcome, error) {
	rsp, err := c.client.SortedSetFetchByScore(ctx, &sdk.SortedSetFetchByScoreRequest{
		CacheName: c.cacheName,
		SetName:   name,
		Order:     sortOrder(order),
		MinScore:  min,
		MaxScore:  max,
		Offset:    offset,
		Count:     count,
	})
	if err != nil {
		return nil, c.wrap("sorted_set_fetch_by_score", err)
	}
	return sortedSetFetch("sorted_set_fetch_by_score", rsp)
}

func (c *Cache) ListPushFront(ctx context.Context, list string, vals [][]byte) (remote.ListPushOutcome, error) {
	rsp, err := c.client.ListConcatenateFront(ctx, &sdk.ListConcatenateFrontRequest{
		CacheName: c.cacheName,
		ListName:  list,
		Values:    byteValues(vals),
	})
	if err != nil {
		return nil, c.wrap("list_concatenate_front", err)
	}
	switch r := rsp.(type) {
	case *responses.ListConcatenateFrontSuccess:
		return remote.ListPushSuccess{Length: int64(r.ListLength())}, nil
	default:
		return nil, unexpected("list_concatenate_front", rsp)
	}
}

func (c *Cache) ListPushBack(ctx context.Context, list string, vals [][]byte) (remote.ListPushOutcome, error) {
	rsp, err := c.client.ListConcatenateBack(ctx, &sdk.ListConcatenateBackRequest{
		CacheName: c.cacheName,
		ListName:  list,
		Values:    byteValues(vals),
	})
	if err != nil {
		return nil, c.wrap("list_concatenate_back", err)
	}
	switch r := rsp.(type) {
	case *responses.ListConcatenateBackSuccess:
		return remote.ListPushSuccess{Length: int64(r.ListLength())}, nil
	default:
		return nil, unexpected("list_concatenate_back", rsp)
	}
}

func (c *Cache) ListPopFront(ctx context.Context, list string) (remote.ListPopOutcome, error) {
	rsp, err := c.client.ListPopFront(ctx, &sdk.ListPopFrontRequest{CacheName: c.cacheName, ListName: list})
	if err != nil {
		return nil, c.wrap("list_pop_front", err)
	}
	switch r := rsp.(type) {
	case *responses.ListPopFrontHit:
		return remote.ListPopHit{Value: r.ValueByte()}, nil
	case *responses.ListPopFrontMiss:
		return remote.ListPopMiss{}, nil
	default:
		return nil, unexpected("list_pop_front", rsp)
	}
}

func (c *Cache) ListPopBack(ctx context.Context, list string) (remote.ListPopOutcome, error) {
	rsp, err := c.client.ListPopBack(ctx, &sdk.ListPopBackRequest{CacheName: c.cacheName, ListName: list})
	if err != nil {
		return nil, c.wrap("list_pop_back", err)
	}
	switch r := rsp.(type) {
	case *responses.ListPopBackHit:
		return remote.ListPopHit{Value: r.ValueByte()}, nil
	case *responses.ListPopBackMiss:
		return remote.ListPopMiss{}, nil
	default:
		return nil, unexpected("list_pop_back", rsp)
	}
}

func (c *Cache) ListLength(ctx context.Context, list string) (remote.LengthOutcome, error) {
	rsp, err := c.client.ListLength(ctx, &sdk.ListLengthRequest{CacheName: c.cacheName, ListName: list})
	if err != nil {
		return nil, c.wrap("list_length", err)
	}
	switch r := rsp.(type) {
	case *responses.ListLengthHit:
		return remote.LengthHit{Length: int64(r.Length())}, nil
	case *responses.ListLengthMiss:
		return remote.LengthMiss{}, nil
	default:
		return nil, unexpected("list_length", rsp)
	}
}

func (c *Cache) ListFetch(ctx context.Context, list string) (remote.ListFetchOutcome, error) {
	rsp, err := c.client.ListFetch(ctx, &sdk.ListFetchRequest{CacheName: c.cacheName, ListName: list})
	if err != nil {
		return nil, c.wrap("list_fetch", err)
	}
	switch r := rsp.(type) {
	case *responses.ListFetchHit:
		items := r.ValueList()
		out := make([][]byte, len(items))
		for i, v := range items {
			out[i] = []byte(v)
		}
		return remote.ListFetchHit{Values: out}, nil
	case *responses.ListFetchMiss:
		return remote.ListFetchMiss{}, nil
	default:
		return nil, unexpected("list_fetch", rsp)
	}
}

// Close releases the underlying SDK client only when this handle owns it.
func (c *Cache) Close(context.Context) error {
	if c.closeClient {
		c.client.Close()
	}
	return nil
}

func sortedSetFetch(op string, rsp responses.SortedSetFetchResponse) (remote.SortedSetFetchOutcome, error) {
	switch r := rsp.(type) {
	case *responses.SortedSetFetchHit:
		elements := r.ValueBytesElements()
		out := make([]remote.ScoredElement, len(elements))
		for i, e := range elements {
			out[i] = remote.ScoredElement{Value: e.Value, Score: e.Score}
		}
		return remote.SortedSetFetchHit{Elements: out}, nil
	case *responses.SortedSetFetchMiss:
		return remote.SortedSetFetchMiss{}, nil
	default:
		return nil, unexpected(op, rsp)
	}
}

func sortOrder(o remote.Order) sdk.SortedSetOrder {
	if o == remote.Descending {
		return sdk.DESCENDING
	}
	return sdk.ASCENDING
}

func values(ss []string) []sdk.Value {
	out := make([]sdk.Value, len(ss))
	for i, s := range ss {
		out[i] = sdk.String(s)
	}
	return out
}

func byteValues(bs [][]byte) []sdk.Value {
	out := make([]sdk.Value, len(bs))
	for i, b := range bs {
		out[i] = sdk.Bytes(b)
	}
	return out
}

func byteMap(m map[string]string) map[string][]byte {
	out := make(map[string][]byte, len(m))
	for k, v := range m {
		out[k] = []byte(v)
	}
	return out
}

// wrap classifies an SDK error by its underlying cause so the command layer
// can map it without importing the SDK.
func (c *Cache) wrap(op string, err error) error {
	code := remote.CodeUnknown
	var merr sdk.MomentoError
	if errors.As(err, &merr) {
		switch merr.Code() {
		case sdk.TimeoutError:
			code = remote.CodeTimeout
		case sdk.AuthenticationError:
			code = remote.CodeAuthentication
		case sdk.ServerUnavailableError:
			code = remote.CodeUnavailable
		case sdk.InvalidArgumentError:
			code = remote.CodeInvalidArgument
		}
	}
	return &remote.Error{Code: code, Op: op, Cause: err}
}

func unexpected(op string, rsp any) error {
	return &remote.Error{
		Code:  remote.CodeUnknown,
		Op:    op,
		Cause: fmt.Errorf("unexpected response variant %T", rsp),
	}
}
