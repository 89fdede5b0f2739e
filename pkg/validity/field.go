package validity

import "strings"

// Type is the control type of a form field, as exposed by the DOM `type`
// property (so selects report "select-one" / "select-multiple").
type Type string

const (
	TypeText           Type = "text"
	TypeSearch         Type = "search"
	TypeTel            Type = "tel"
	TypePassword       Type = "password"
	TypeEmail          Type = "email"
	TypeURL            Type = "url"
	TypeNumber         Type = "number"
	TypeRange          Type = "range"
	TypeDate           Type = "date"
	TypeTime           Type = "time"
	TypeHidden         Type = "hidden"
	TypeCheckbox       Type = "checkbox"
	TypeRadio          Type = "radio"
	TypeSelectOne      Type = "select-one"
	TypeSelectMultiple Type = "select-multiple"
	TypeTextarea       Type = "textarea"
	TypeFile           Type = "file"
	TypeReset          Type = "reset"
	TypeSubmit         Type = "submit"
	TypeButton         Type = "button"
)

// ParseType normalises a raw type name. Unknown or empty names fall back to
// text, which is what browsers do for input elements.
func ParseType(raw string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case TypeText, TypeSearch, TypeTel, TypePassword, TypeEmail, TypeURL,
		TypeNumber, TypeRange, TypeDate, TypeTime, TypeHidden, TypeCheckbox,
		TypeRadio, TypeSelectOne, TypeSelectMultiple, TypeTextarea, TypeFile,
		TypeReset, TypeSubmit, TypeButton:
		return t
	case "datetime-local", "month", "week", "color", "image":
		return t
	default:
		return TypeText
	}
}

// IsNumeric reports whether the type holds a number (number or range).
func (t Type) IsNumeric() bool {
	return t == TypeNumber || t == TypeRange
}

// IsCheckable reports whether the type carries checkedness instead of a value.
func (t Type) IsCheckable() bool {
	return t == TypeCheckbox || t == TypeRadio
}

// IsSelect reports whether the type is a select element.
func (t Type) IsSelect() bool {
	return t == TypeSelectOne || t == TypeSelectMultiple
}

// Skipped reports whether fields of this type are never validated.
func (t Type) Skipped() bool {
	switch t {
	case TypeFile, TypeReset, TypeSubmit, TypeButton:
		return true
	}
	return false
}

// Attr is an optional constraint attribute. Present distinguishes
// `pattern=""` from a missing pattern attribute.
type Attr struct {
	Value   string
	Present bool
}

// A returns a present attribute with the given value.
func A(value string) Attr {
	return Attr{Value: value, Present: true}
}

// SelectOption is one option of a select field.
type SelectOption struct {
	Value    string
	Selected bool
}

// Field is a snapshot of a form control taken right before evaluation.
type Field struct {
	Name     string
	ID       string
	Type     Type
	Value    string
	Checked  bool
	Disabled bool
	Required bool

	Pattern   Attr
	Min       Attr
	Max       Attr
	Step      Attr
	MinLength Attr
	MaxLength Attr
	// Title is used as the pattern mismatch message when present.
	Title Attr

	// Options are consulted for select types instead of Value.
	Options []SelectOption

	// CustomError mirrors setCustomValidity: a non-empty message marks the
	// field invalid regardless of its value.
	CustomError string
}

// Key identifies the field for error node ids: the id, or the name when the
// field has no id.
func (f Field) Key() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// SelectedValue returns the value used for constraint checks. For selects it
// is the value of the first selected option and ok is false when none is
// selected.
func (f Field) SelectedValue() (value string, ok bool) {
	if !f.Type.IsSelect() {
		return f.Value, true
	}
	if f.Options == nil {
		return f.Value, f.Value != ""
	}
	for _, opt := range f.Options {
		if opt.Selected {
			return opt.Value, true
		}
	}
	return "", false
}
