package messages

import (
	"regexp"
	"strconv"

	"github.com/dmitrymomot/validate/pkg/validity"
)

// Catalog holds one message template per failure kind.
// Templates may reference {minLength}, {maxLength}, {length}, {min} and {max}.
type Catalog struct {
	ValueMissing            string `yaml:"value_missing" json:"value_missing"`
	ValueMissingSelect      string `yaml:"value_missing_select" json:"value_missing_select"`
	ValueMissingSelectMulti string `yaml:"value_missing_select_multi" json:"value_missing_select_multi"`
	TypeMismatchEmail       string `yaml:"type_mismatch_email" json:"type_mismatch_email"`
	TypeMismatchURL         string `yaml:"type_mismatch_url" json:"type_mismatch_url"`
	TooShort                string `yaml:"too_short" json:"too_short"`
	TooLong                 string `yaml:"too_long" json:"too_long"`
	PatternMismatch         string `yaml:"pattern_mismatch" json:"pattern_mismatch"`
	BadInput                string `yaml:"bad_input" json:"bad_input"`
	StepMismatch            string `yaml:"step_mismatch" json:"step_mismatch"`
	RangeOverflow           string `yaml:"range_overflow" json:"range_overflow"`
	RangeUnderflow          string `yaml:"range_underflow" json:"range_underflow"`
	Generic                 string `yaml:"generic" json:"generic"`
}

// Default returns the built-in English catalog.
func Default() Catalog {
	return Catalog{
		ValueMissing:            "Please fill out this field.",
		ValueMissingSelect:      "Please select a value.",
		ValueMissingSelectMulti: "Please select at least one value.",
		TypeMismatchEmail:       "Please enter an email address.",
		TypeMismatchURL:         "Please enter a URL.",
		TooShort:                "Please lengthen this text to {minLength} characters or more. You are currently using {length} characters.",
		TooLong:                 "Please shorten this text to no more than {maxLength} characters. You are currently using {length} characters.",
		PatternMismatch:         "Please match the requested format.",
		BadInput:                "Please enter a number.",
		StepMismatch:            "Please select a valid value.",
		RangeOverflow:           "Please select a value that is no more than {max}.",
		RangeUnderflow:          "Please select a value that is no less than {min}.",
		Generic:                 "The value you entered for this field is invalid.",
	}
}

// Merge returns c with every non-empty template of o applied on top.
// Later merges win.
func (c Catalog) Merge(o Catalog) Catalog {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&c.ValueMissing, o.ValueMissing)
	pick(&c.ValueMissingSelect, o.ValueMissingSelect)
	pick(&c.ValueMissingSelectMulti, o.ValueMissingSelectMulti)
	pick(&c.TypeMismatchEmail, o.TypeMismatchEmail)
	pick(&c.TypeMismatchURL, o.TypeMismatchURL)
	pick(&c.TooShort, o.TooShort)
	pick(&c.TooLong, o.TooLong)
	pick(&c.PatternMismatch, o.PatternMismatch)
	pick(&c.BadInput, o.BadInput)
	pick(&c.StepMismatch, o.StepMismatch)
	pick(&c.RangeOverflow, o.RangeOverflow)
	pick(&c.RangeUnderflow, o.RangeUnderflow)
	pick(&c.Generic, o.Generic)
	return c
}

// Message returns the user-facing message for the highest-priority flag of
// r, or an empty string when the field is valid or skipped.
func (c Catalog) Message(f validity.Field, r validity.Result) string {
	if r.Valid || r.Skipped {
		return ""
	}

	value, _ := f.SelectedValue()
	params := map[string]string{
		"length":    strconv.Itoa(validity.Length(value)),
		"minLength": f.MinLength.Value,
		"maxLength": f.MaxLength.Value,
		"min":       f.Min.Value,
		"max":       f.Max.Value,
	}

	switch r.First() {
	case validity.ValueMissing:
		switch f.Type {
		case validity.TypeSelectMultiple:
			return c.ValueMissingSelectMulti
		case validity.TypeSelectOne:
			return c.ValueMissingSelect
		}
		return c.ValueMissing
	case validity.TypeMismatch:
		switch f.Type {
		case validity.TypeEmail:
			return c.TypeMismatchEmail
		case validity.TypeURL:
			return c.TypeMismatchURL
		}
	case validity.TooShort:
		return Interpolate(c.TooShort, params)
	case validity.TooLong:
		return Interpolate(c.TooLong, params)
	case validity.BadInput:
		return c.BadInput
	case validity.StepMismatch:
		return c.StepMismatch
	case validity.RangeOverflow:
		return Interpolate(c.RangeOverflow, params)
	case validity.RangeUnderflow:
		return Interpolate(c.RangeUnderflow, params)
	case validity.PatternMismatch:
		if f.Title.Present {
			return f.Title.Value
		}
		return c.PatternMismatch
	case validity.CustomError:
		if f.CustomError != "" {
			return f.CustomError
		}
	}
	return c.Generic
}

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// Interpolate replaces {name} placeholders with params[name].
// Unknown placeholders are kept as-is.
func Interpolate(tmpl string, params map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[1:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
