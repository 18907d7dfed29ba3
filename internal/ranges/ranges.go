// Package ranges translates Redis range conventions (inclusive stop,
// negative indexes counting from the end) into the forms the rest of the
// module needs.
package ranges

// RankWindow converts a Redis inclusive [start, stop] rank pair into the
// remote API's half-open window: start inclusive, end exclusive, nil for an
// unbounded end. Negative ranks count from the end on both sides of the
// conversion, so stop == -1 (through the last element) becomes an open end
// and any other stop becomes stop+1.
func RankWindow(start, stop int64) (*int32, *int32) {
	s := int32(start)
	if stop == -1 {
		return &s, nil
	}
	e := int32(stop + 1)
	return &s, &e
}

// Slice normalizes Redis [start, stop] list indexes against a fetched list
// of length n and returns half-open Go slice bounds. Out-of-range requests
// clamp; an inverted window is empty.
func Slice(n int, start, stop int64) (int, int) {
	lo := normalize(n, start)
	hi := normalize(n, stop) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return 0, 0
	}
	return lo, hi
}

func normalize(n int, i int64) int {
	if i < 0 {
		return n + int(i)
	}
	return int(i)
}
