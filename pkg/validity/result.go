package validity

// Flag names one reason a value fails constraint validation.
// Flags are declared in reporting priority order.
type Flag uint8

const (
	FlagNone Flag = iota
	ValueMissing
	TypeMismatch
	TooShort
	TooLong
	BadInput
	StepMismatch
	RangeOverflow
	RangeUnderflow
	PatternMismatch
	CustomError
)

// Priority lists every flag from highest to lowest reporting priority.
var Priority = []Flag{
	ValueMissing,
	TypeMismatch,
	TooShort,
	TooLong,
	BadInput,
	StepMismatch,
	RangeOverflow,
	RangeUnderflow,
	PatternMismatch,
	CustomError,
}

var flagNames = map[Flag]string{
	FlagNone:        "none",
	ValueMissing:    "valueMissing",
	TypeMismatch:    "typeMismatch",
	TooShort:        "tooShort",
	TooLong:         "tooLong",
	BadInput:        "badInput",
	StepMismatch:    "stepMismatch",
	RangeOverflow:   "rangeOverflow",
	RangeUnderflow:  "rangeUnderflow",
	PatternMismatch: "patternMismatch",
	CustomError:     "customError",
}

// String returns the ValidityState property name of the flag.
func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the flag as its ValidityState name.
func (f Flag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Result mirrors the ValidityState interface.
type Result struct {
	ValueMissing    bool `json:"valueMissing"`
	TypeMismatch    bool `json:"typeMismatch"`
	TooShort        bool `json:"tooShort"`
	TooLong         bool `json:"tooLong"`
	BadInput        bool `json:"badInput"`
	StepMismatch    bool `json:"stepMismatch"`
	RangeOverflow   bool `json:"rangeOverflow"`
	RangeUnderflow  bool `json:"rangeUnderflow"`
	PatternMismatch bool `json:"patternMismatch"`
	CustomError     bool `json:"customError"`
	Valid           bool `json:"valid"`

	// Skipped is set for fields that are not eligible for validation.
	// Skipped results are always valid.
	Skipped bool `json:"skipped,omitempty"`
}

// Has reports whether the flag is set.
func (r Result) Has(f Flag) bool {
	switch f {
	case ValueMissing:
		return r.ValueMissing
	case TypeMismatch:
		return r.TypeMismatch
	case TooShort:
		return r.TooShort
	case TooLong:
		return r.TooLong
	case BadInput:
		return r.BadInput
	case StepMismatch:
		return r.StepMismatch
	case RangeOverflow:
		return r.RangeOverflow
	case RangeUnderflow:
		return r.RangeUnderflow
	case PatternMismatch:
		return r.PatternMismatch
	case CustomError:
		return r.CustomError
	}
	return false
}

// Flags returns every set flag in priority order.
func (r Result) Flags() []Flag {
	var flags []Flag
	for _, f := range Priority {
		if r.Has(f) {
			flags = append(flags, f)
		}
	}
	return flags
}

// First returns the highest-priority set flag, or FlagNone for valid results.
func (r Result) First() Flag {
	for _, f := range Priority {
		if r.Has(f) {
			return f
		}
	}
	return FlagNone
}

func (r *Result) set(f Flag, v bool) {
	switch f {
	case ValueMissing:
		r.ValueMissing = v
	case TypeMismatch:
		r.TypeMismatch = v
	case TooShort:
		r.TooShort = v
	case TooLong:
		r.TooLong = v
	case BadInput:
		r.BadInput = v
	case StepMismatch:
		r.StepMismatch = v
	case RangeOverflow:
		r.RangeOverflow = v
	case RangeUnderflow:
		r.RangeUnderflow = v
	case PatternMismatch:
		r.PatternMismatch = v
	case CustomError:
		r.CustomError = v
	}
}
