package validate

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/validate/pkg/dom"
	"github.com/dmitrymomot/validate/pkg/validity"
)

// Errors maps control keys to their error messages. A radio group is one
// entry keyed by the group name. It is based on url.Values so a failed
// submission can be echoed back as form data.
type Errors url.Values

// NewErrors creates an empty Errors.
func NewErrors() Errors {
	return make(Errors)
}

// Error summarizes the first message of each key, sorted by key.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, k := range e.Keys() {
		if msg := e.Get(k); msg != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", k, msg))
		}
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Add adds an error message for a control key.
func (e Errors) Add(key, message string) {
	url.Values(e).Add(key, message)
}

// Get returns the first error message for a control key.
func (e Errors) Get(key string) string {
	return url.Values(e).Get(key)
}

// Has checks if a control key has any errors.
func (e Errors) Has(key string) bool {
	return len(e[key]) > 0
}

// IsEmpty returns true if there are no errors.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Keys returns the keys with errors in sorted order.
func (e Errors) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// addControl records the message of c under its report key. It returns false
// when the key already has a message, as for later members of a radio group.
func (e Errors) addControl(c *dom.Control, message string) bool {
	key := reportKey(c)
	if e.Has(key) {
		return false
	}
	e.Add(key, message)
	return true
}

// reportKey is the group name for named radio buttons and the control key
// otherwise.
func reportKey(c *dom.Control) string {
	if c.Type() == validity.TypeRadio && c.Name() != "" {
		return c.Name()
	}
	return c.Key()
}
