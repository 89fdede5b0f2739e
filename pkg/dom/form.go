package dom

import (
	"golang.org/x/net/html"

	"github.com/dmitrymomot/validate/pkg/form"
	"github.com/dmitrymomot/validate/pkg/validity"
)

// Form is a form element of a Document.
type Form struct {
	doc  *Document
	node *html.Node
}

// Node returns the form element.
func (f *Form) Node() *html.Node {
	return f.node
}

// Document returns the document the form belongs to.
func (f *Form) Document() *Document {
	return f.doc
}

// ID returns the id attribute of the form.
func (f *Form) ID() string {
	v, _ := getAttr(f.node, "id")
	return v
}

// Key identifies the form in logs and reports: its id, name, or "".
func (f *Form) Key() string {
	if id := f.ID(); id != "" {
		return id
	}
	v, _ := getAttr(f.node, "name")
	return v
}

// Is reports whether f and other wrap the same element.
func (f *Form) Is(other *Form) bool {
	return other != nil && f.node == other.node
}

// Matches reports whether the form element matches sel.
func (f *Form) Matches(sel Selector) bool {
	return sel.Match(f.node)
}

// SetNoValidate adds or removes the novalidate attribute.
func (f *Form) SetNoValidate(on bool) {
	if on {
		setAttr(f.node, "novalidate", "true")
		return
	}
	removeAttr(f.node, "novalidate")
}

// NoValidate reports whether the form carries the novalidate attribute.
func (f *Form) NoValidate() bool {
	return hasAttr(f.node, "novalidate")
}

// Controls returns the form's listed controls in tree order, including
// controls outside the element that reference it through a form attribute.
func (f *Form) Controls() []*Control {
	var out []*Control
	walk(f.doc.root, func(n *html.Node) bool {
		if isControl(n) && f.doc.ownerForm(n) == f.node {
			out = append(out, &Control{form: f, node: n})
		}
		return true
	})
	return out
}

// Control returns the first control whose id or name equals key.
func (f *Form) Control(key string) (*Control, bool) {
	for _, c := range f.Controls() {
		if c.ID() == key {
			return c, true
		}
	}
	for _, c := range f.Controls() {
		if c.Name() == key {
			return c, true
		}
	}
	return nil, false
}

// Group returns the radio buttons of the form sharing c's name, or nil when
// c is not a named radio button.
func (f *Form) Group(c *Control) []*Control {
	if c.Type() != validity.TypeRadio || c.Name() == "" {
		return nil
	}
	var group []*Control
	for _, other := range f.Controls() {
		if other.Type() == validity.TypeRadio && other.Name() == c.Name() {
			group = append(group, other)
		}
	}
	return group
}

// Model snapshots the form for the validity engine. Field i of the model
// belongs to control i of the returned slice.
func (f *Form) Model() (*form.Form, []*Control) {
	controls := f.Controls()
	m := &form.Form{ID: f.Key(), Fields: make([]validity.Field, 0, len(controls))}
	for _, c := range controls {
		m.Fields = append(m.Fields, c.Field())
	}
	return m, controls
}
