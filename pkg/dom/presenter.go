package dom

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	DefaultFieldClass = "error"
	DefaultErrorClass = "error-message"

	describedBy = "aria-describedby"
)

// Hooks are called around every show and remove. Nil hooks are skipped.
type Hooks struct {
	BeforeShow   func(c *Control, message string)
	AfterShow    func(c *Control, message string)
	BeforeRemove func(c *Control)
	AfterRemove  func(c *Control)
}

// Presenter shows and hides error messages next to controls.
type Presenter struct {
	fieldClass string
	errorClass string
	hooks      Hooks
	policy     *bluemonday.Policy
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithFieldClass sets the class toggled on invalid controls.
func WithFieldClass(class string) PresenterOption {
	return func(p *Presenter) {
		if class != "" {
			p.fieldClass = class
		}
	}
}

// WithErrorClass sets the class of error message elements.
func WithErrorClass(class string) PresenterOption {
	return func(p *Presenter) {
		if class != "" {
			p.errorClass = class
		}
	}
}

// WithHooks sets the lifecycle hooks.
func WithHooks(h Hooks) PresenterOption {
	return func(p *Presenter) {
		p.hooks = h
	}
}

// WithPolicy replaces the sanitization policy applied to message markup.
func WithPolicy(policy *bluemonday.Policy) PresenterOption {
	return func(p *Presenter) {
		if policy != nil {
			p.policy = policy
		}
	}
}

// NewPresenter creates a Presenter. Messages may carry inline markup; it is
// sanitized with bluemonday's UGC policy unless another policy is given.
func NewPresenter(opts ...PresenterOption) *Presenter {
	p := &Presenter{
		fieldClass: DefaultFieldClass,
		errorClass: DefaultErrorClass,
		policy:     bluemonday.UGCPolicy(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FieldClass returns the class toggled on invalid controls.
func (p *Presenter) FieldClass() string { return p.fieldClass }

// ErrorClass returns the class of error message elements.
func (p *Presenter) ErrorClass() string { return p.errorClass }

// MessageID returns the id of the error element for a control key.
func MessageID(key string) string {
	return "error-for-" + key
}

// target returns the control that carries the message: the last member of
// a radio group, otherwise c itself. It also returns every control whose
// field class must change.
func (p *Presenter) target(c *Control) (*Control, []*Control) {
	group := c.form.Group(c)
	if len(group) == 0 {
		return c, []*Control{c}
	}
	return group[len(group)-1], append([]*Control{c}, group...)
}

// Show displays message for c.
func (p *Presenter) Show(c *Control, message string) {
	if p.hooks.BeforeShow != nil {
		p.hooks.BeforeShow(c, message)
	}

	target, marked := p.target(c)
	for _, m := range marked {
		addClass(m.node, p.fieldClass)
	}

	key := target.Key()
	if key == "" {
		if p.hooks.AfterShow != nil {
			p.hooks.AfterShow(target, message)
		}
		return
	}

	msg := p.messageNode(target)
	if msg == nil {
		msg = &html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
			Attr: []html.Attribute{
				{Key: "class", Val: p.errorClass},
				{Key: "id", Val: MessageID(key)},
			},
		}
		insertAfter(p.anchor(target), msg)
	}

	setAttr(target.node, describedBy, MessageID(key))
	p.setMessage(msg, message)
	setStyle(msg, "display", "", "visibility", "")

	if p.hooks.AfterShow != nil {
		p.hooks.AfterShow(target, message)
	}
}

// Remove hides the message of c, if any.
func (p *Presenter) Remove(c *Control) {
	if p.hooks.BeforeRemove != nil {
		p.hooks.BeforeRemove(c)
	}

	removeAttr(c.node, describedBy)
	target, marked := p.target(c)
	for _, m := range marked {
		removeClass(m.node, p.fieldClass)
	}
	removeAttr(target.node, describedBy)

	if msg := p.messageNode(target); msg != nil {
		removeChildren(msg)
		setStyle(msg, "display", "none", "visibility", "hidden")
	}

	if p.hooks.AfterRemove != nil {
		p.hooks.AfterRemove(target)
	}
}

// Message returns the text of the visible message of c, or "".
func (p *Presenter) Message(c *Control) string {
	target, _ := p.target(c)
	msg := p.messageNode(target)
	if msg == nil || styleValue(msg, "display") == "none" {
		return ""
	}
	return textContent(msg)
}

// HasError reports whether c is currently marked invalid.
func (p *Presenter) HasError(c *Control) bool {
	return hasClass(c.node, p.fieldClass)
}

// Shown returns the controls of d currently marked invalid.
func (p *Presenter) Shown(d *Document) []*Control {
	var out []*Control
	for _, c := range d.Controls() {
		if p.HasError(c) {
			out = append(out, c)
		}
	}
	return out
}

// ClearAll hides every message element of d, including ones whose control
// no longer exists.
func (p *Presenter) ClearAll(d *Document) {
	for _, c := range p.Shown(d) {
		p.Remove(c)
	}
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, p.errorClass) {
			if id, _ := getAttr(n, "id"); strings.HasPrefix(id, MessageID("")) {
				removeChildren(n)
				setStyle(n, "display", "none", "visibility", "hidden")
			}
		}
		return true
	})
}

// messageNode finds the error element of c within its scope, so forms
// sharing a control key keep separate messages.
func (p *Presenter) messageNode(c *Control) *html.Node {
	key := c.Key()
	if key == "" {
		return nil
	}
	id := MessageID(key)
	return find(p.scope(c), func(n *html.Node) bool {
		if n.Type != html.ElementNode || !hasClass(n, p.errorClass) {
			return false
		}
		v, _ := getAttr(n, "id")
		return v == id
	})
}

// scope is the form element, or for a control placed outside its form with
// the form attribute, the element its message is inserted into.
func (p *Presenter) scope(c *Control) *html.Node {
	if contains(c.form.node, c.node) {
		return c.form.node
	}
	if parent := p.anchor(c).Parent; parent != nil {
		return parent
	}
	return c.form.node
}

// anchor is the node the message element follows: the label of a checkbox
// or radio button, otherwise the control.
func (p *Presenter) anchor(c *Control) *html.Node {
	if c.Type().IsCheckable() {
		if label := c.label(); label != nil {
			return label
		}
	}
	return c.node
}

func (p *Presenter) setMessage(msg *html.Node, message string) {
	removeChildren(msg)
	clean := p.policy.Sanitize(message)
	nodes, err := html.ParseFragment(strings.NewReader(clean), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		setTextContent(msg, message)
		return
	}
	for _, n := range nodes {
		msg.AppendChild(n)
	}
}

// label finds label[for=key] in the form, or the enclosing label.
func (c *Control) label() *html.Node {
	if id := c.ID(); id != "" {
		if l := find(c.form.node, func(n *html.Node) bool {
			v, ok := getAttr(n, "for")
			return isElement(n, atom.Label) && ok && v == id
		}); l != nil {
			return l
		}
	}
	return closest(c.node, atom.Label)
}
