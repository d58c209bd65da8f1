package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the name of a validated field under the key "field".
// Accepts anything with a String method, such as a field kind.
func Field(kind fmt.Stringer) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("field", kind.String())
}

// Value records a raw input value under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Record records a contact record name under the key "record".
func Record(name string) slog.Attr {
	return slog.String("record", name)
}

// Lang records a language code under the key "lang".
func Lang(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("lang", code)
}
