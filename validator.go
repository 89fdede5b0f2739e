package validate

import (
	"log/slog"

	"github.com/dmitrymomot/validate/pkg/dom"
	"github.com/dmitrymomot/validate/pkg/form"
	"github.com/dmitrymomot/validate/pkg/logger"
	"github.com/dmitrymomot/validate/pkg/messages"
	"github.com/dmitrymomot/validate/pkg/validity"
)

// Validator attaches constraint validation to the forms of a document that
// match its selector. It holds no process-wide state; a Validator is bound
// to at most one document at a time and is not safe for concurrent use.
type Validator struct {
	selector      string
	fieldClass    string
	errorClass    string
	catalog       messages.Catalog
	disableSubmit bool
	onSubmit      SubmitFunc
	hooks         dom.Hooks
	engine        *validity.Engine
	logger        *slog.Logger

	match     dom.Selector
	checker   *form.Checker
	presenter *dom.Presenter
	doc       *dom.Document
}

// New creates a Validator. It fails only when the selector does not parse.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		selector:   DefaultSelector,
		fieldClass: dom.DefaultFieldClass,
		errorClass: dom.DefaultErrorClass,
		catalog:    messages.Default(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}

	match, err := dom.CompileSelector(v.selector)
	if err != nil {
		return nil, err
	}
	v.match = match
	if v.engine == nil {
		v.engine = validity.New(validity.WithLogger(v.logger))
	}
	v.checker = form.NewChecker(v.engine, v.catalog)
	v.presenter = dom.NewPresenter(
		dom.WithFieldClass(v.fieldClass),
		dom.WithErrorClass(v.errorClass),
		dom.WithHooks(v.hooks),
	)
	return v, nil
}

// Catalog returns the effective message catalog.
func (v *Validator) Catalog() messages.Catalog {
	return v.catalog
}

// Selector returns the selector of validated forms.
func (v *Validator) Selector() string {
	return v.selector
}

// Document returns the attached document, or nil.
func (v *Validator) Document() *dom.Document {
	return v.doc
}

// Forms returns the validated forms of the attached document.
func (v *Validator) Forms() []*dom.Form {
	if v.doc == nil {
		return nil
	}
	return v.doc.FormsMatching(v.match)
}

// Init attaches v to doc, detaching from any previous document first, and
// marks every matching form novalidate. A nil document leaves v detached.
func (v *Validator) Init(doc *dom.Document) {
	v.Destroy()
	if doc == nil {
		v.logger.Debug("no document to attach to")
		return
	}

	v.doc = doc
	forms := doc.FormsMatching(v.match)
	for _, f := range forms {
		f.SetNoValidate(true)
	}
	v.logger.Debug("attached", slog.String("selector", v.selector), logger.Count(len(forms)))
}

// Destroy removes every shown error and the novalidate attribute from
// matching forms, then detaches v. It is a no-op when v is not attached.
func (v *Validator) Destroy() {
	if v.doc == nil {
		return
	}
	v.presenter.ClearAll(v.doc)
	for _, f := range v.Forms() {
		f.SetNoValidate(false)
	}
	v.doc = nil
}

// handles reports whether f is a validated form of the attached document.
func (v *Validator) handles(f *dom.Form) bool {
	return v.doc != nil && f != nil && f.Document() == v.doc && f.Matches(v.match)
}

// HasError evaluates c and returns its error message, or "" when the value
// is valid or the control is not validated.
func (v *Validator) HasError(c *dom.Control) string {
	o, ok := v.outcome(c)
	if !ok || !o.Invalid() {
		return ""
	}
	return o.Message
}

// ShowError displays message for c.
func (v *Validator) ShowError(c *dom.Control, message string) {
	v.presenter.Show(c, message)
}

// RemoveError hides the error of c.
func (v *Validator) RemoveError(c *dom.Control) {
	v.presenter.Remove(c)
}

// Blur handles a control losing focus: its error is shown or removed. It
// returns false when the control's form is not validated.
func (v *Validator) Blur(c *dom.Control) (form.Outcome, bool) {
	if c == nil || !v.handles(c.Form()) {
		return form.Outcome{}, false
	}
	return v.apply(c)
}

// Click handles a click on a checkbox or radio button. Other controls are
// ignored.
func (v *Validator) Click(c *dom.Control) (form.Outcome, bool) {
	if c == nil || !c.Type().IsCheckable() || !v.handles(c.Form()) {
		return form.Outcome{}, false
	}
	return v.apply(c)
}

func (v *Validator) apply(c *dom.Control) (form.Outcome, bool) {
	o, ok := v.outcome(c)
	if !ok {
		return o, false
	}
	if o.Invalid() {
		v.presenter.Show(c, o.Message)
		v.logger.Debug("field invalid",
			logger.Form(c.Form().Key()), logger.Field(c.Key()), logger.Flag(o.Flag))
	} else {
		v.presenter.Remove(c)
	}
	return o, true
}

func (v *Validator) outcome(c *dom.Control) (form.Outcome, bool) {
	if c == nil {
		return form.Outcome{}, false
	}
	m, controls := c.Form().Model()
	for i, other := range controls {
		if other.Is(c) {
			return v.checker.Field(m, i), true
		}
	}
	return form.Outcome{}, false
}

// Submit validates every control of f, showing and removing errors, and
// reports whether the submission may proceed. The on-submit callback runs
// only when no control is invalid, even if submission is disabled. Forms
// that are not validated are always allowed.
func (v *Validator) Submit(f *dom.Form) Submission {
	if !v.handles(f) {
		return Submission{Allowed: true, Report: form.Report{FirstInvalid: -1}}
	}

	m, controls := f.Model()
	report := v.checker.Form(m)
	sub := Submission{Report: report, Errors: NewErrors()}
	var invalid []slog.Attr
	for i, o := range report.Outcomes {
		c := controls[i]
		if !o.Invalid() {
			if v.presenter.HasError(c) {
				v.presenter.Remove(c)
			}
			continue
		}
		v.presenter.Show(c, o.Message)
		if sub.Errors.addControl(c, o.Message) {
			invalid = append(invalid, slog.String(reportKey(c), o.Flag.String()))
		}
	}
	if !report.Valid() {
		sub.FirstInvalid = controls[report.FirstInvalid]
	}
	sub.Allowed = report.Valid() && !v.disableSubmit

	v.logger.Info("form submitted",
		logger.Form(f.Key()),
		slog.Bool("allowed", sub.Allowed),
		logger.Count(len(report.Errors())),
		logger.Group("invalid", invalid...),
	)

	if report.Valid() && v.onSubmit != nil {
		v.onSubmit(f, report)
	}
	return sub
}

// Submission is the result of Submit.
type Submission struct {
	// Allowed is false when a control is invalid or submission is disabled.
	Allowed bool
	// FirstInvalid is the control to focus, or nil.
	FirstInvalid *dom.Control
	Report       form.Report
	// Errors maps control keys, or radio group names, to their messages.
	Errors Errors
}

// Err returns the submission errors, or nil when no control is invalid.
func (s Submission) Err() error {
	if s.Errors.IsEmpty() {
		return nil
	}
	return s.Errors
}
