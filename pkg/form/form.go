package form

import (
	"github.com/dmitrymomot/validate/pkg/messages"
	"github.com/dmitrymomot/validate/pkg/validity"
)

// Form is the validation view of one form: its fields in tree order.
type Form struct {
	ID     string
	Fields []validity.Field
}

// Group returns the indexes of the radio fields sharing f.Fields[i]'s name.
// It returns nil when the field is not a named radio button.
func (f *Form) Group(i int) []int {
	field := f.Fields[i]
	if field.Type != validity.TypeRadio || field.Name == "" {
		return nil
	}

	var members []int
	for idx, other := range f.Fields {
		if other.Type == validity.TypeRadio && other.Name == field.Name {
			members = append(members, idx)
		}
	}
	return members
}

// Resolve returns the descriptor to evaluate for field i. Radio buttons are
// evaluated through their group: the checked member when there is one,
// otherwise the field itself, required when any member is required.
func (f *Form) Resolve(i int) validity.Field {
	field := f.Fields[i]
	group := f.Group(i)
	if group == nil {
		return field
	}

	for _, idx := range group {
		if f.Fields[idx].Checked {
			return f.Fields[idx]
		}
	}
	for _, idx := range group {
		if f.Fields[idx].Required {
			field.Required = true
			break
		}
	}
	return field
}

// Outcome is the evaluation of one field.
type Outcome struct {
	Index   int             `json:"index"`
	Field   validity.Field  `json:"-"`
	Name    string          `json:"name,omitempty"`
	Result  validity.Result `json:"result"`
	Flag    validity.Flag   `json:"flag"`
	Message string          `json:"message,omitempty"`
}

// Invalid reports whether the field has an error to show.
func (o Outcome) Invalid() bool {
	return !o.Result.Valid
}

// Report is the evaluation of a whole form.
type Report struct {
	Outcomes []Outcome `json:"fields"`
	// FirstInvalid is the index of the first invalid field, or -1.
	FirstInvalid int `json:"first_invalid"`
}

// Valid reports whether no field has an error.
func (r Report) Valid() bool {
	return r.FirstInvalid < 0
}

// Errors returns the outcomes of invalid fields.
func (r Report) Errors() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Invalid() {
			out = append(out, o)
		}
	}
	return out
}

// Checker evaluates forms and renders messages for their errors.
type Checker struct {
	engine  *validity.Engine
	catalog messages.Catalog
}

// NewChecker creates a Checker. A nil engine gets a default one.
func NewChecker(engine *validity.Engine, catalog messages.Catalog) *Checker {
	if engine == nil {
		engine = validity.New()
	}
	return &Checker{engine: engine, catalog: catalog}
}

// Field evaluates field i of f.
func (c *Checker) Field(f *Form, i int) Outcome {
	field := f.Resolve(i)
	res := c.engine.Evaluate(field)
	return Outcome{
		Index:   i,
		Field:   field,
		Name:    field.Key(),
		Result:  res,
		Flag:    res.First(),
		Message: c.catalog.Message(field, res),
	}
}

// Form evaluates every field of f.
func (c *Checker) Form(f *Form) Report {
	report := Report{
		Outcomes:     make([]Outcome, 0, len(f.Fields)),
		FirstInvalid: -1,
	}
	for i := range f.Fields {
		o := c.Field(f, i)
		if o.Invalid() && report.FirstInvalid < 0 {
			report.FirstInvalid = i
		}
		report.Outcomes = append(report.Outcomes, o)
	}
	return report
}
