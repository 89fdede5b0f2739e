package logger

import "log/slog"

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

// Field records a control's id or name under the key "field".
func Field(key string) slog.Attr {
	return slog.String("field", key)
}

// Form records a form's id or name under the key "form".
func Form(key string) slog.Attr {
	return slog.String("form", key)
}

// Flag records a validity flag name under the key "flag". Any value with a
// String method works.
func Flag(flag interface{ String() string }) slog.Attr {
	return slog.String("flag", flag.String())
}

// Pattern records a pattern attribute under the key "pattern".
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
