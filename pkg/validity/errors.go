package validity

import "errors"

// ErrInvalidPattern is reported (to the logger only) when a pattern
// attribute is not a valid regular expression. Such patterns are ignored.
var ErrInvalidPattern = errors.New("invalid pattern attribute")
