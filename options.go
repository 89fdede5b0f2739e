package validate

import (
	"log/slog"

	"github.com/dmitrymomot/validate/pkg/config"
	"github.com/dmitrymomot/validate/pkg/dom"
	"github.com/dmitrymomot/validate/pkg/form"
	"github.com/dmitrymomot/validate/pkg/messages"
	"github.com/dmitrymomot/validate/pkg/validity"
)

// DefaultSelector opts forms into validation.
const DefaultSelector = "[data-validate]"

// SubmitFunc is called after a submission passed validation.
type SubmitFunc func(f *dom.Form, report form.Report)

// Option configures a Validator.
type Option func(*Validator)

// WithSelector sets the CSS selector of the forms to validate.
func WithSelector(selector string) Option {
	return func(v *Validator) {
		if selector != "" {
			v.selector = selector
		}
	}
}

// WithFieldClass sets the class added to invalid fields.
func WithFieldClass(class string) Option {
	return func(v *Validator) {
		if class != "" {
			v.fieldClass = class
		}
	}
}

// WithErrorClass sets the class of error message elements.
func WithErrorClass(class string) Option {
	return func(v *Validator) {
		if class != "" {
			v.errorClass = class
		}
	}
}

// WithMessages merges c over the current catalog. Empty templates keep the
// current value.
func WithMessages(c messages.Catalog) Option {
	return func(v *Validator) {
		v.catalog = v.catalog.Merge(c)
	}
}

// WithDisableSubmit blocks every submission, valid or not.
func WithDisableSubmit(disable bool) Option {
	return func(v *Validator) {
		v.disableSubmit = disable
	}
}

// WithOnSubmit sets the callback run when a submission has no errors.
func WithOnSubmit(fn SubmitFunc) Option {
	return func(v *Validator) {
		v.onSubmit = fn
	}
}

// WithHooks sets the show and remove lifecycle hooks.
func WithHooks(h dom.Hooks) Option {
	return func(v *Validator) {
		v.hooks = h
	}
}

// WithEngine sets the validity engine.
func WithEngine(e *validity.Engine) Option {
	return func(v *Validator) {
		if e != nil {
			v.engine = e
		}
	}
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithConfig applies loaded settings. Empty values keep the defaults.
func WithConfig(cfg config.Settings) Option {
	return func(v *Validator) {
		WithSelector(cfg.Selector)(v)
		WithFieldClass(cfg.FieldClass)(v)
		WithErrorClass(cfg.ErrorClass)(v)
		v.disableSubmit = v.disableSubmit || cfg.DisableSubmit
	}
}
