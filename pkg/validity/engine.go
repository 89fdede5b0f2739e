package validity

import (
	"errors"
	"log/slog"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/dmitrymomot/validate/pkg/cache"
	"github.com/dmitrymomot/validate/pkg/logger"
)

const (
	// DefaultPatternCacheSize bounds the number of compiled patterns kept.
	DefaultPatternCacheSize = 256
	// DefaultPatternTimeout caps a single pattern match.
	DefaultPatternTimeout = 100 * time.Millisecond
)

// Option configures an Engine.
type Option func(*Engine)

// WithPatternCacheSize sets how many compiled patterns are kept.
// Non-positive sizes are ignored.
func WithPatternCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cacheSize = n
		}
	}
}

// WithPatternTimeout sets the match timeout for pattern attributes.
// Non-positive durations are ignored.
func WithPatternTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger used to report ignored patterns.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine computes validity results. It is safe for concurrent use; its only
// state is the compiled pattern cache.
type Engine struct {
	cacheSize int
	timeout   time.Duration
	logger    *slog.Logger
	patterns  *cache.LRU[string, *regexp2.Regexp]
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		cacheSize: DefaultPatternCacheSize,
		timeout:   DefaultPatternTimeout,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.patterns = cache.NewLRU[string, *regexp2.Regexp](e.cacheSize)
	return e
}

// Evaluate computes the validity of f. All flags are computed, even though
// only Result.First is reported to users.
func (e *Engine) Evaluate(f Field) Result {
	if f.Disabled || f.Type.Skipped() {
		return Result{Valid: true, Skipped: true}
	}

	value, selected := f.SelectedValue()
	n := Length(value)
	isNum := f.Type.IsNumeric()

	var r Result
	r.set(ValueMissing, valueMissing(f, value, selected))
	r.set(TypeMismatch, n > 0 && typeMismatch(f.Type, value))

	if minLen, ok := parseLength(f.MinLength); ok {
		r.set(TooShort, n > 0 && n < minLen)
	}
	if maxLen, ok := parseLength(f.MaxLength); ok {
		r.set(TooLong, n > 0 && n > maxLen)
	}

	if isNum && n > 0 {
		if !IsNumber(value) {
			r.set(BadInput, true)
		} else if num, ok := ParseNumber(value); ok {
			r.set(StepMismatch, stepMismatch(num, f.Step))
			if limit, ok := boundOf(f.Max); ok {
				r.set(RangeOverflow, num.Cmp(limit) > 0)
			}
			if limit, ok := boundOf(f.Min); ok {
				r.set(RangeUnderflow, num.Cmp(limit) < 0)
			}
		}
	}

	if f.Pattern.Present && n > 0 {
		r.set(PatternMismatch, !e.matchPattern(f.Pattern.Value, value))
	}
	r.set(CustomError, f.CustomError != "")

	r.Valid = r.First() == FlagNone
	return r
}

func valueMissing(f Field, value string, selected bool) bool {
	if !f.Required {
		return false
	}
	switch {
	case f.Type.IsCheckable():
		return !f.Checked
	case f.Type.IsSelect():
		return !selected || value == ""
	default:
		return value == ""
	}
}

func typeMismatch(t Type, value string) bool {
	switch t {
	case TypeEmail:
		return !IsEmail(value)
	case TypeURL:
		return !IsURL(value)
	}
	return false
}

func boundOf(a Attr) (*big.Rat, bool) {
	if !a.Present {
		return nil, false
	}
	return ParseFloat(a.Value)
}

func stepMismatch(value *big.Rat, stepAttr Attr) bool {
	step, ok := parseStep(stepAttr)
	if !ok {
		return false
	}
	return !new(big.Rat).Quo(value, step).IsInt()
}

// matchPattern reports whether value matches pattern as a whole. Patterns
// that fail to compile or time out never cause a mismatch.
func (e *Engine) matchPattern(pattern, value string) bool {
	re, err := e.patterns.GetOrCompute(pattern, func() (*regexp2.Regexp, error) {
		re, err := regexp2.Compile("^(?:"+pattern+")$", regexp2.ECMAScript)
		if err != nil {
			return nil, errors.Join(ErrInvalidPattern, err)
		}
		re.MatchTimeout = e.timeout
		return re, nil
	})
	if err != nil {
		e.logger.Debug("pattern ignored", logger.Pattern(pattern), logger.Error(err))
		return true
	}

	m, err := re.FindStringMatch(value)
	if err != nil {
		e.logger.Warn("pattern match aborted", logger.Pattern(pattern), logger.Error(err))
		return true
	}
	return m != nil && m.Index == 0 && m.Length == utf8.RuneCountInString(value)
}
