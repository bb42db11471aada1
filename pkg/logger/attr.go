package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". All nil yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records a form declaration name under "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records a field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Class records an entity class name under "class".
func Class(name string) slog.Attr {
	return slog.String("class", name)
}

// Result records an import outcome under "result".
func Result(r fmt.Stringer) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	return slog.String("result", r.String())
}

// RequestID records the request identifier under "request_id". A nil id yields an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
