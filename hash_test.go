package momentoredis

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/redis/go-redis/v9"
)

// ==============================
// Hash commands
// ==============================

// TestHSetVariadicForms: all go-redis argument shapes fold into one merged
// write, last writer wins on duplicate fields.
func TestHSetVariadicForms(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		args []interface{}
		want map[string]string
	}{
		{
			name: "alternating",
			args: []interface{}{"f1", "v1", "f2", "v2"},
			want: map[string]string{"f1": "v1", "f2": "v2"},
		},
		{
			name: "string map",
			args: []interface{}{map[string]string{"f1": "v1", "f2": "v2"}},
			want: map[string]string{"f1": "v1", "f2": "v2"},
		},
		{
			name: "interface map",
			args: []interface{}{map[string]interface{}{"f1": "v1", "n": 7}},
			want: map[string]string{"f1": "v1", "n": "7"},
		},
		{
			name: "string slice",
			args: []interface{}{[]string{"f1", "v1", "f2", "v2"}},
			want: map[string]string{"f1": "v1", "f2": "v2"},
		},
		{
			name: "duplicate field last writer wins",
			args: []interface{}{"f1", "old", "f1", "new"},
			want: map[string]string{"f1": "new"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, newMemCache(), nil)
			n, err := c.HSet(ctx, "h", tc.args...).Result()
			if err != nil {
				t.Fatalf("HSet: %v", err)
			}
			if n != int64(len(tc.want)) {
				t.Fatalf("HSet count = %d, want %d", n, len(tc.want))
			}
			got, err := c.HGetAll(ctx, "h").Result()
			if err != nil || !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("HGetAll = %v err=%v, want %v", got, err, tc.want)
			}
		})
	}
}

func TestHSetRejectsBadArguments(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newMemCache(), nil)

	if err := c.HSet(ctx, "h").Err(); err == nil {
		t.Fatalf("HSet with no pairs: want error")
	}
	if err := c.HSet(ctx, "h", "f1", "v1", "dangling").Err(); err == nil {
		t.Fatalf("HSet odd arguments: want error")
	}
}

func TestHGet(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newMemCache(), nil)

	if err := c.HGet(ctx, "h", "f").Err(); err != redis.Nil {
		t.Fatalf("HGet absent hash: want redis.Nil, got %v", err)
	}
	if err := c.HSet(ctx, "h", "f", "v").Err(); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	if got, err := c.HGet(ctx, "h", "f").Result(); err != nil || got != "v" {
		t.Fatalf("HGet: got=%q err=%v", got, err)
	}
	if err := c.HGet(ctx, "h", "other").Err(); err != redis.Nil {
		t.Fatalf("HGet absent field: want redis.Nil, got %v", err)
	}
}

func TestHMGetPreservesOrderWithMisses(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newMemCache(), nil)

	if err := c.HSet(ctx, "h", "f1", "v1", "f3", "v3").Err(); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	got, err := c.HMGet(ctx, "h", "f1", "f2", "f3").Result()
	if err != nil {
		t.Fatalf("HMGet: %v", err)
	}
	want := []interface{}{"v1", nil, "v3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("HMGet = %v, want %v", got, want)
	}

	// Absent hash: all positions nil, no error.
	got, err = c.HMGet(ctx, "nohash", "f1", "f2").Result()
	if err != nil || !reflect.DeepEqual(got, []interface{}{nil, nil}) {
		t.Fatalf("HMGet absent hash = %v err=%v", got, err)
	}
}

func TestHKeysHValsHLen(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newMemCache(), nil)

	if n, err := c.HLen(ctx, "h").Result(); err != nil || n != 0 {
		t.Fatalf("HLen absent hash: n=%d err=%v", n, err)
	}
	if ks, err := c.HKeys(ctx, "h").Result(); err != nil || len(ks) != 0 {
		t.Fatalf("HKeys absent hash: %v err=%v", ks, err)
	}

	if err := c.HSet(ctx, "h", "f1", "v1", "f2", "v2").Err(); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	ks, err := c.HKeys(ctx, "h").Result()
	if err != nil {
		t.Fatalf("HKeys: %v", err)
	}
	sort.Strings(ks)
	if !reflect.DeepEqual(ks, []string{"f1", "f2"}) {
		t.Fatalf("HKeys = %v", ks)
	}
	vs, err := c.HVals(ctx, "h").Result()
	if err != nil {
		t.Fatalf("HVals: %v", err)
	}
	sort.Strings(vs)
	if !reflect.DeepEqual(vs, []string{"v1", "v2"}) {
		t.Fatalf("HVals = %v", vs)
	}
	if n, err := c.HLen(ctx, "h").Result(); err != nil || n != 2 {
		t.Fatalf("HLen: n=%d err=%v", n, err)
	}
}

// TestHDelCountsRequestedFields: the remote does not report which fields
// existed, so the count is the number requested.
func TestHDelCountsRequestedFields(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newMemCache(), nil)

	if err := c.HSet(ctx, "h", "f1", "v1", "f2", "v2").Err(); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	n, err := c.HDel(ctx, "h", "f1", "missing").Result()
	if err != nil || n != 2 {
		t.Fatalf("HDel: n=%d err=%v, want 2", n, err)
	}
	if err := c.HGet(ctx, "h", "f1").Err(); err != redis.Nil {
		t.Fatalf("field survived HDel: %v", err)
	}
	if got, _ := c.HGet(ctx, "h", "f2").Result(); got != "v2" {
		t.Fatalf("unrelated field lost: %q", got)
	}
}

func TestHIncrBy(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newMemCache(), nil)

	if n, err := c.HIncrBy(ctx, "h", "n", 5).Result(); err != nil || n != 5 {
		t.Fatalf("HIncrBy fresh: n=%d err=%v", n, err)
	}
	if n, err := c.HIncrBy(ctx, "h", "n", -2).Result(); err != nil || n != 3 {
		t.Fatalf("HIncrBy negative: n=%d err=%v", n, err)
	}
}
