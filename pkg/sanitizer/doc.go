// Package sanitizer normalises raw control values before they are validated.
//
// Browsers never expose the raw attribute text of a control: text-like
// inputs drop line breaks, email and URL inputs are also trimmed, and
// textareas report LF line endings. Value applies the same rules so that a
// value read from markup is the value the user would see.
//
//	v := sanitizer.Value(validity.TypeEmail, " jane@example.com\n")
//	// v == "jane@example.com"
//
// The helpers are stateless and depend only on the standard library.
package sanitizer
