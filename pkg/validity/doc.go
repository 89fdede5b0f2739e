// Package validity computes HTML constraint-validation state for form fields.
//
// A Field is a typed snapshot of a control: its type, current value or
// checkedness, and the constraint attributes required, pattern, min, max,
// step, minlength and maxlength. Engine.Evaluate turns it into a Result that
// mirrors the DOM ValidityState: one boolean per failure reason plus the
// derived Valid flag.
//
// Every flag is computed independently; when several apply, Result.First
// picks the one to report using a fixed priority:
//
//	valueMissing > typeMismatch > tooShort > tooLong > badInput >
//	stepMismatch > rangeOverflow > rangeUnderflow > patternMismatch >
//	customError
//
// Disabled fields and file, reset, submit and button controls are skipped
// and always valid.
//
// # Usage
//
//	engine := validity.New()
//	res := engine.Evaluate(validity.Field{
//		Type:     validity.TypeEmail,
//		Value:    "abc",
//		Required: true,
//	})
//	res.First() // validity.TypeMismatch
//
// Pattern attributes are ECMAScript regular expressions matched against the
// whole value; they are compiled once and cached per Engine. Numbers are
// compared with exact decimal arithmetic, so step="0.1" accepts 0.3.
package validity
