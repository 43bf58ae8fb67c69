package convert

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

var errNotMap = fmt.Errorf("input data is not a map")
var errNotSlice = fmt.Errorf("input data is not a slice")
var errNotScalar = fmt.Errorf("value is not a scalar")

// Stringify renders a decoded JSON scalar the way the API would have sent it
// as text. Whole floats lose their fraction, nil becomes "".
func Stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case fmt.Stringer:
		return t.String(), nil
	}
	return "", fmt.Errorf("%w: type %T", errNotScalar, v)
}

// ToStringMap converts map[string]any or map[string]string to map[string]string.
// Scalar values are stringified; nested objects and arrays are an error.
// Returns nil map if input is nil.
func ToStringMap(data any) (map[string]string, error) {
	if data == nil {
		return nil, nil
	}
	if m, ok := data.(map[string]string); ok {
		return m, nil
	}
	mAny, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: input type %T", errNotMap, data)
	}
	result := make(map[string]string, len(mAny))
	for k, v := range mAny {
		s, err := Stringify(v)
		if err != nil {
			return nil, fmt.Errorf("key '%s': %w", k, err)
		}
		result[k] = s
	}
	return result, nil
}

// ToSliceOfString converts []string and []any to []string.
// Returns an error if the input is not a slice or holds non-scalars.
func ToSliceOfString(data any) ([]string, error) {
	if data == nil {
		return []string{}, nil
	}
	if slice, ok := data.([]string); ok {
		return slice, nil
	}

	val := reflect.ValueOf(data)
	if val.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: input type %T", errNotSlice, data)
	}

	result := make([]string, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		s, err := Stringify(val.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		result = append(result, s)
	}
	return result, nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
