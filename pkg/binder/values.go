package binder

import (
	"net/url"
	"sort"
	"strings"

	"github.com/ruFelix/hesper/pkg/primitive"
)

// Values folds url.Values into a scope.
//
//	a=1           -> {"a": "1"}
//	a=1&a=2       -> {"a": []string{"1", "2"}}
//	a[b]=1        -> {"a": {"b": "1"}}
//	a[b][c]=1     -> {"a": {"b": {"c": "1"}}}
//	a[]=1&a[]=2   -> {"a": []string{"1", "2"}}
//
// A nested key wins over a scalar at the same path.
func Values(v url.Values) primitive.Scope {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	// plain keys first so bracketed keys can replace them
	sort.Strings(keys)

	out := make(map[string]any, len(v))
	for _, key := range keys {
		values := v[key]
		if len(values) == 0 {
			continue
		}

		path, list := splitKey(key)
		if len(path) == 0 {
			continue
		}

		var value any
		switch {
		case list:
			value = append([]string(nil), values...)
		case len(values) == 1:
			value = values[0]
		default:
			value = append([]string(nil), values...)
		}
		assign(out, path, value)
	}
	return primitive.Scope(out)
}

// splitKey parses "a[b][c]" into [a b c]. A trailing "[]" marks a list.
// Malformed brackets keep the key verbatim.
func splitKey(key string) (path []string, list bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}, false
	}

	path = []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}, false
		}
		part := rest[1:end]
		rest = rest[end+1:]
		if part == "" {
			if rest != "" {
				return []string{key}, false
			}
			return path, true
		}
		path = append(path, part)
	}
	return path, false
}

func assign(m map[string]any, path []string, value any) {
	for _, part := range path[:len(path)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}

	last := path[len(path)-1]
	if _, nested := m[last].(map[string]any); nested {
		return
	}
	m[last] = value
}
