package dao

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IntID coerces a raw identifier to int64. Strings must hold a base-10 integer.
func IntID(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), nil
		}
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), nil
		}
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v), nil
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidID, raw)
}

// UUID coerces a raw identifier to a UUID.
func UUID(raw any) (uuid.UUID, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("%w: %v is not a UUID", ErrInvalidID, raw)
}

// StringID renders a raw identifier as a non-blank string.
func StringID(raw any) (string, error) {
	var s string
	switch v := raw.(type) {
	case string:
		s = strings.TrimSpace(v)
	case fmt.Stringer:
		s = v.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s = fmt.Sprint(v)
	case float64:
		if n, err := IntID(v); err == nil {
			s = strconv.FormatInt(n, 10)
		}
	case json.Number:
		s = v.String()
	}
	if s == "" {
		return "", fmt.Errorf("%w: %v", ErrInvalidID, raw)
	}
	return s, nil
}
