package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Model records the document model name under the key "model".
func Model(name string) slog.Attr {
	return slog.String("model", name)
}

// Field records an attribute name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records attribute names under the key "fields".
// If names is empty, it returns an empty Attr.
func Fields(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// Validator records a validator name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// ErrorCode records a failure code under the key "error_code".
func ErrorCode(code string) slog.Attr {
	return slog.String("error_code", code)
}

// Failures records the number of validation failures under the key "failures".
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Collection records a database collection under the key "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// DocumentID records a document identifier under the key "document_id".
// If id is nil, it returns an empty Attr.
func DocumentID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("document_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
