// Package binder turns HTTP requests into primitive.Scope values.
//
// Form bodies and query strings are folded so that bracketed keys become nested
// mappings, which is the shape married date fields expect:
//
//	birthday[day]=15&birthday[month]=6&birthday[year]=1990&tags=a&tags=b
//
// becomes
//
//	primitive.Scope{
//		"birthday": map[string]any{"day": "15", "month": "6", "year": "1990"},
//		"tags":     []string{"a", "b"},
//	}
//
// JSON bodies are decoded with json.Number so numeric identifiers keep their precision.
//
//	scope, err := binder.Scope(r)
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//		// 415
//	}
package binder
