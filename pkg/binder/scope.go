package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/ruFelix/hesper/pkg/primitive"
)

const (
	// DefaultMaxMemory is the memory limit for parsing multipart forms.
	DefaultMaxMemory = 10 << 20
	// DefaultMaxJSONSize is the body limit for JSON requests.
	DefaultMaxJSONSize = 1 << 20
)

// Scope reads the raw input of r.
//
// GET, HEAD and DELETE requests use the query string. Other methods use the body:
// application/x-www-form-urlencoded, multipart/form-data or application/json.
// Query parameters are merged under form bodies, the body winning on conflicts.
func Scope(r *http.Request) (primitive.Scope, error) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return Values(r.URL.Query()), nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected a form or JSON body", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return Values(r.Form), nil

	case "multipart/form-data":
		if boundary := params["boundary"]; !validBoundary(boundary) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return Values(r.Form), nil

	case "application/json":
		return decodeJSON(r.Body)
	}

	return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
}

func decodeJSON(body io.Reader) (primitive.Scope, error) {
	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(data) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return primitive.Scope{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var scope map[string]any
	if err := dec.Decode(&scope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}
	if scope == nil {
		scope = map[string]any{}
	}
	return primitive.Scope(scope), nil
}

// validBoundary checks the RFC 2046 boundary length and character set.
func validBoundary(b string) bool {
	if b == "" || len(b) > 70 {
		return false
	}
	return !strings.ContainsFunc(b, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		}
		return !strings.ContainsRune("'()+_,-./:=? ", r)
	})
}
