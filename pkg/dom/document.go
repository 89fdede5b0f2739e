package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document. It is not safe for concurrent use.
type Document struct {
	root *html.Node
	// custom validity messages are runtime state, never markup
	custom map[*html.Node]string
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return NewDocument(root), nil
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an already parsed node tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root, custom: make(map[*html.Node]string)}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// Selector matches elements against a CSS selector group.
type Selector struct {
	source string
	group  cascadia.SelectorGroup
}

// CompileSelector parses a CSS selector group such as "[data-validate]".
func CompileSelector(s string) (Selector, error) {
	group, err := cascadia.ParseGroup(s)
	if err != nil {
		return Selector{}, fmt.Errorf("%w %q: %w", ErrInvalidSelector, s, err)
	}
	return Selector{source: s, group: group}, nil
}

// String returns the selector source.
func (s Selector) String() string {
	return s.source
}

// Match reports whether n matches the selector.
func (s Selector) Match(n *html.Node) bool {
	return s.group != nil && s.group.Match(n)
}

// Forms returns every form element matching selector, in tree order.
func (d *Document) Forms(selector string) ([]*Form, error) {
	sel, err := CompileSelector(selector)
	if err != nil {
		return nil, err
	}
	return d.FormsMatching(sel), nil
}

// FormsMatching returns every form element matching sel, in tree order.
func (d *Document) FormsMatching(sel Selector) []*Form {
	var forms []*Form
	for _, f := range d.AllForms() {
		if sel.Match(f.node) {
			forms = append(forms, f)
		}
	}
	return forms
}

// AllForms returns every form element in tree order.
func (d *Document) AllForms() []*Form {
	var forms []*Form
	walk(d.root, func(n *html.Node) bool {
		if isElement(n, atom.Form) {
			forms = append(forms, &Form{doc: d, node: n})
		}
		return true
	})
	return forms
}

// FormByID returns the form with the given id attribute.
func (d *Document) FormByID(id string) (*Form, bool) {
	n := d.elementByID(id)
	if !isElement(n, atom.Form) {
		return nil, false
	}
	return &Form{doc: d, node: n}, true
}

func (d *Document) elementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return find(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
}

// ownerForm resolves the form a control belongs to: the form named by its
// form attribute, otherwise the nearest form ancestor.
func (d *Document) ownerForm(n *html.Node) *html.Node {
	if id, ok := getAttr(n, "form"); ok {
		if owner := d.elementByID(id); isElement(owner, atom.Form) {
			return owner
		}
		return nil
	}
	return closest(n, atom.Form)
}

// ControlFor wraps a control element. It returns false when n is not a
// form control or does not belong to a form.
func (d *Document) ControlFor(n *html.Node) (*Control, bool) {
	if !isControl(n) {
		return nil, false
	}
	owner := d.ownerForm(n)
	if owner == nil {
		return nil, false
	}
	return &Control{form: &Form{doc: d, node: owner}, node: n}, true
}

// Controls returns every control element in the document that belongs to a
// form, in tree order.
func (d *Document) Controls() []*Control {
	var out []*Control
	walk(d.root, func(n *html.Node) bool {
		if c, ok := d.ControlFor(n); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}

func isControl(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Input, atom.Select, atom.Textarea, atom.Button:
		return true
	}
	return false
}
