package primitive

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scope is raw input keyed by field name. Values are scalars or sub-mappings.
type Scope map[string]any

// Sub-field keys of the married shape.
const (
	Day     = "day"
	Month   = "month"
	Year    = "year"
	Hours   = "hours"
	Minutes = "minutes"
	Seconds = "seconds"
)

func subScope(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Scope:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case map[string]int:
		out := make(map[string]any, len(m))
		for k, n := range m {
			out[k] = n
		}
		return out, true
	}
	return nil, false
}

// isBlank treats nil, blank strings, "0", numeric zero, false and empty collections as empty.
func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(x)
		return s == "" || s == "0"
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case int32:
		return x == 0
	case float64:
		return x == 0
	case json.Number:
		return x == "" || x == "0"
	case []string:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	if m, ok := subScope(v); ok {
		return len(m) == 0
	}
	return false
}

// scalar returns the string form of a string or numeric value.
func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	}
	return "", false
}

// component coerces one married sub-value to an int.
func component(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		if x == math.Trunc(x) {
			return int(x), true
		}
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func hasAll(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := m[k]; !ok || v == nil {
			return false
		}
	}
	return true
}
