// Package form evaluates whole forms with the validity engine.
//
// It owns the rules that need more than one field: radio buttons sharing a
// name form a group that is validated as a single field, and a Report tells
// whether the form may be submitted and which field should receive focus.
package form
