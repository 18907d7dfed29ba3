package momentoredis

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// encodeValue normalizes a caller-supplied value into the raw bytes sent to
// the remote store. The accepted scalar set mirrors what go-redis itself
// would write on the wire: text and binary pass through untouched, numeric
// and bool scalars are stringified (the remote store is value-type-agnostic
// for string-backed structures).
func encodeValue(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case int:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(nil, v, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
	case bool:
		if v {
			return []byte("1"), nil
		}
		return []byte("0"), nil
	case time.Time:
		return v.AppendFormat(nil, time.RFC3339Nano), nil
	case encoding.BinaryMarshaler:
		return v.MarshalBinary()
	case nil:
		return nil, fmt.Errorf("momentoredis: nil value")
	default:
		return nil, fmt.Errorf("momentoredis: unsupported value type %T", v)
	}
}

func encodeValues(vs []interface{}) ([][]byte, error) {
	out := make([][]byte, len(vs))
	for i, v := range vs {
		b, err := encodeValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// fieldPairs folds the go-redis variadic field/value conventions into one
// map: alternating "f1", "v1", ... arguments, a single []string or
// []interface{} of alternating items, or a single map. When the same field
// appears more than once the last writer wins.
func fieldPairs(command string, values []interface{}) (map[string][]byte, error) {
	out := make(map[string][]byte, len(values)/2)

	put := func(field, value interface{}) error {
		f, err := encodeValue(field)
		if err != nil {
			return err
		}
		v, err := encodeValue(value)
		if err != nil {
			return err
		}
		out[string(f)] = v
		return nil
	}

	putAlternating := func(items []interface{}) error {
		if len(items) == 0 || len(items)%2 != 0 {
			return fmt.Errorf("momentoredis: %s requires a non-empty, even number of field/value items", command)
		}
		for i := 0; i < len(items); i += 2 {
			if err := put(items[i], items[i+1]); err != nil {
				return err
			}
		}
		return nil
	}

	if len(values) == 1 {
		switch arg := values[0].(type) {
		case map[string]interface{}:
			if len(arg) == 0 {
				return nil, fmt.Errorf("momentoredis: %s with no field/value pairs", command)
			}
			for f, v := range arg {
				if err := put(f, v); err != nil {
					return nil, err
				}
			}
			return out, nil
		case map[string]string:
			if len(arg) == 0 {
				return nil, fmt.Errorf("momentoredis: %s with no field/value pairs", command)
			}
			for f, v := range arg {
				out[f] = []byte(v)
			}
			return out, nil
		case []string:
			items := make([]interface{}, len(arg))
			for i, s := range arg {
				items[i] = s
			}
			if err := putAlternating(items); err != nil {
				return nil, err
			}
			return out, nil
		case []interface{}:
			if err := putAlternating(arg); err != nil {
				return nil, err
			}
			return out, nil
		}
	}

	if err := putAlternating(values); err != nil {
		return nil, err
	}
	return out, nil
}
