package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/validate/pkg/sanitizer"
	"github.com/dmitrymomot/validate/pkg/validity"
)

// Control is an input, select, textarea or button element owned by a form.
type Control struct {
	form *Form
	node *html.Node
}

// Node returns the control element.
func (c *Control) Node() *html.Node {
	return c.node
}

// Form returns the owning form.
func (c *Control) Form() *Form {
	return c.form
}

// ID returns the id attribute of the control.
func (c *Control) ID() string {
	v, _ := getAttr(c.node, "id")
	return v
}

// Name returns the name attribute of the control.
func (c *Control) Name() string {
	v, _ := getAttr(c.node, "name")
	return v
}

// Key is the id, or the name when the control has no id.
func (c *Control) Key() string {
	if id := c.ID(); id != "" {
		return id
	}
	return c.Name()
}

// Is reports whether c and other wrap the same element.
func (c *Control) Is(other *Control) bool {
	return other != nil && c.node == other.node
}

// Type returns the DOM type of the control.
func (c *Control) Type() validity.Type {
	switch c.node.DataAtom {
	case atom.Select:
		if hasAttr(c.node, "multiple") {
			return validity.TypeSelectMultiple
		}
		return validity.TypeSelectOne
	case atom.Textarea:
		return validity.TypeTextarea
	case atom.Button:
		v, _ := getAttr(c.node, "type")
		switch t := validity.Type(strings.ToLower(strings.TrimSpace(v))); t {
		case validity.TypeReset, validity.TypeButton:
			return t
		}
		return validity.TypeSubmit
	}
	v, _ := getAttr(c.node, "type")
	return validity.ParseType(v)
}

// Disabled reports whether the control is disabled directly or through a
// disabled fieldset ancestor (controls in that fieldset's first legend stay
// enabled).
func (c *Control) Disabled() bool {
	if hasAttr(c.node, "disabled") {
		return true
	}
	for child, p := c.node, c.node.Parent; p != nil; child, p = p, p.Parent {
		if !isElement(p, atom.Fieldset) || !hasAttr(p, "disabled") {
			continue
		}
		if legend := firstLegend(p); legend != nil && legend == child {
			continue
		}
		return true
	}
	return false
}

func firstLegend(fieldset *html.Node) *html.Node {
	for n := fieldset.FirstChild; n != nil; n = n.NextSibling {
		if isElement(n, atom.Legend) {
			return n
		}
	}
	return nil
}

// Checked reports the checkedness of checkboxes and radio buttons.
func (c *Control) Checked() bool {
	return hasAttr(c.node, "checked")
}

// Value returns the sanitized current value.
func (c *Control) Value() string {
	switch c.node.DataAtom {
	case atom.Textarea:
		return sanitizer.Value(validity.TypeTextarea, textContent(c.node))
	case atom.Select:
		for _, opt := range c.Options() {
			if opt.Selected {
				return opt.Value
			}
		}
		return ""
	}
	v, ok := getAttr(c.node, "value")
	if !ok && c.Type().IsCheckable() {
		v = "on"
	}
	return sanitizer.Value(c.Type(), v)
}

// Options returns the options of a select with browser selectedness applied:
// a single select shows its last selected option, or the first enabled one
// when none is marked selected. It returns nil for other controls.
func (c *Control) Options() []validity.SelectOption {
	if !isElement(c.node, atom.Select) {
		return nil
	}

	nodes := c.optionNodes()
	opts := make([]validity.SelectOption, 0, len(nodes))
	last := -1
	for i, n := range nodes {
		selected := hasAttr(n, "selected")
		if selected {
			last = i
		}
		opts = append(opts, validity.SelectOption{Value: optionValue(n), Selected: selected})
	}

	if c.Type() == validity.TypeSelectMultiple {
		return opts
	}
	if last < 0 && !hasSize(c.node) {
		for i, n := range nodes {
			if !hasAttr(n, "disabled") {
				last = i
				break
			}
		}
	}
	for i := range opts {
		opts[i].Selected = i == last
	}
	return opts
}

func hasSize(n *html.Node) bool {
	v, ok := getAttr(n, "size")
	return ok && strings.TrimSpace(v) != "" && strings.TrimSpace(v) != "1" && strings.TrimSpace(v) != "0"
}

func (c *Control) optionNodes() []*html.Node {
	var out []*html.Node
	for n := c.node.FirstChild; n != nil; n = n.NextSibling {
		switch {
		case isElement(n, atom.Option):
			out = append(out, n)
		case isElement(n, atom.Optgroup):
			for o := n.FirstChild; o != nil; o = o.NextSibling {
				if isElement(o, atom.Option) {
					out = append(out, o)
				}
			}
		}
	}
	return out
}

func optionValue(n *html.Node) string {
	if v, ok := getAttr(n, "value"); ok {
		return v
	}
	return strings.Join(strings.Fields(textContent(n)), " ")
}

func attr(n *html.Node, key string) validity.Attr {
	v, ok := getAttr(n, key)
	return validity.Attr{Value: v, Present: ok}
}

// Field reads the control into a validity descriptor. Attributes are read
// fresh on every call.
func (c *Control) Field() validity.Field {
	f := validity.Field{
		Name:        c.Name(),
		ID:          c.ID(),
		Type:        c.Type(),
		Disabled:    c.Disabled(),
		Required:    hasAttr(c.node, "required"),
		Title:       attr(c.node, "title"),
		CustomError: c.form.doc.custom[c.node],
	}

	switch f.Type {
	case validity.TypeSelectOne, validity.TypeSelectMultiple:
		f.Options = c.Options()
		f.Value = c.Value()
		return f
	case validity.TypeTextarea:
		f.MinLength = attr(c.node, "minlength")
		f.MaxLength = attr(c.node, "maxlength")
	default:
		f.Checked = c.Checked()
		f.Pattern = attr(c.node, "pattern")
		f.Min = attr(c.node, "min")
		f.Max = attr(c.node, "max")
		f.Step = attr(c.node, "step")
		f.MinLength = attr(c.node, "minlength")
		f.MaxLength = attr(c.node, "maxlength")
	}
	f.Value = c.Value()
	return f
}

// SetValue replaces the current value. For selects it selects the options
// whose value is in values; other controls use the first value.
func (c *Control) SetValue(values ...string) {
	switch c.node.DataAtom {
	case atom.Textarea:
		setTextContent(c.node, first(values))
	case atom.Select:
		want := make(map[string]bool, len(values))
		for _, v := range values {
			want[v] = true
		}
		picked := false
		for _, n := range c.optionNodes() {
			if want[optionValue(n)] && (!picked || c.Type() == validity.TypeSelectMultiple) {
				setAttr(n, "selected", "")
				picked = true
				continue
			}
			removeAttr(n, "selected")
		}
	default:
		setAttr(c.node, "value", first(values))
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// SetChecked changes checkedness. Checking a radio button unchecks the rest
// of its group.
func (c *Control) SetChecked(on bool) {
	if !on {
		removeAttr(c.node, "checked")
		return
	}
	for _, other := range c.form.Group(c) {
		if !other.Is(c) {
			removeAttr(other.node, "checked")
		}
	}
	setAttr(c.node, "checked", "")
}

// SetCustomValidity sets a custom error message; an empty message clears it.
func (c *Control) SetCustomValidity(message string) {
	if message == "" {
		delete(c.form.doc.custom, c.node)
		return
	}
	c.form.doc.custom[c.node] = message
}
