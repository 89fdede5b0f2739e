package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/validate/pkg/validity"
)

const asciiWhitespace = "\t\n\f\r "

// StripNewlines removes every LF and CR from s.
func StripNewlines(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// TrimASCIIWhitespace removes leading and trailing ASCII whitespace only,
// leaving other Unicode spaces in place.
func TrimASCIIWhitespace(s string) string {
	return strings.Trim(s, asciiWhitespace)
}

// NormalizeNewlines converts CRLF and lone CR line breaks to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Value applies the value sanitization of the given control type to raw.
//
// Number and range values are left untouched: a browser would blank a
// malformed number, but keeping it is what lets the engine report badInput.
func Value(t validity.Type, raw string) string {
	switch t {
	case validity.TypeText, validity.TypeSearch, validity.TypeTel, validity.TypePassword:
		return StripNewlines(raw)
	case validity.TypeEmail, validity.TypeURL:
		return TrimASCIIWhitespace(StripNewlines(raw))
	case validity.TypeTextarea:
		return NormalizeNewlines(raw)
	}
	return raw
}
