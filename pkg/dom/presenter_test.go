package dom_test

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate/pkg/dom"
)

const presenterPage = `<form id="f">
<input id="email" name="email" type="email" required>
<input type="checkbox" id="terms" name="terms" required><label for="terms">I agree</label>
<label><input type="checkbox" name="news"> News</label>
<input type="radio" id="r1" name="plan" value="free" required>
<input type="radio" id="r2" name="plan" value="pro">
</form>`

func presenterForm(t *testing.T) (*dom.Document, *dom.Form) {
	t.Helper()
	doc := parse(t, presenterPage)
	f, ok := doc.FormByID("f")
	require.True(t, ok)
	return doc, f
}

func TestPresenter_ShowRemove(t *testing.T) {
	doc, f := presenterForm(t)
	p := dom.NewPresenter()
	email := control(t, f, "email")

	p.Show(email, "Please fill out this field.")
	assert.True(t, p.HasError(email))
	assert.Equal(t, "Please fill out this field.", p.Message(email))
	out := doc.String()
	assert.Contains(t, out, `aria-describedby="error-for-email"`)
	assert.Contains(t, out, `<div class="error-message" id="error-for-email">Please fill out this field.</div>`)

	p.Show(email, "Please enter an email address.")
	assert.Equal(t, 1, strings.Count(doc.String(), `id="error-for-email"`), "message element is reused")
	assert.Equal(t, "Please enter an email address.", p.Message(email))

	p.Remove(email)
	assert.False(t, p.HasError(email))
	assert.Empty(t, p.Message(email))
	out = doc.String()
	assert.NotContains(t, out, "aria-describedby")
	assert.Contains(t, out, `<div class="error-message" id="error-for-email" style="display: none; visibility: hidden"></div>`)

	p.Show(email, "Again.")
	assert.Equal(t, "Again.", p.Message(email))
	assert.Contains(t, doc.String(), `<div class="error-message" id="error-for-email">Again.</div>`)
}

func TestPresenter_Placement(t *testing.T) {
	doc, f := presenterForm(t)
	p := dom.NewPresenter()

	p.Show(control(t, f, "terms"), "Please check this box if you want to proceed.")
	assert.Contains(t, doc.String(),
		`<label for="terms">I agree</label><div class="error-message" id="error-for-terms">`)

	p.Show(control(t, f, "news"), "Check it.")
	assert.Contains(t, doc.String(),
		` News</label><div class="error-message" id="error-for-news">Check it.</div>`)
}

func TestPresenter_RadioGroup(t *testing.T) {
	doc, f := presenterForm(t)
	p := dom.NewPresenter()
	r1, r2 := control(t, f, "r1"), control(t, f, "r2")

	p.Show(r1, "Please select one of these options.")
	assert.True(t, p.HasError(r1))
	assert.True(t, p.HasError(r2))
	assert.Equal(t, "Please select one of these options.", p.Message(r1))
	assert.Contains(t, doc.String(),
		`aria-describedby="error-for-r2"/><div class="error-message" id="error-for-r2">`)
	assert.NotContains(t, doc.String(), "error-for-r1")

	p.Remove(r1)
	assert.False(t, p.HasError(r1))
	assert.False(t, p.HasError(r2))
	assert.Empty(t, p.Message(r2))
}

func TestPresenter_Sanitize(t *testing.T) {
	t.Run("ugc policy", func(t *testing.T) {
		doc, f := presenterForm(t)
		p := dom.NewPresenter()
		email := control(t, f, "email")

		p.Show(email, `<b>Bad</b> input<script>alert(1)</script>`)
		assert.Equal(t, "Bad input", p.Message(email))
		assert.Contains(t, doc.String(), `<b>Bad</b> input</div>`)
		assert.NotContains(t, doc.String(), "script")
	})

	t.Run("strict policy", func(t *testing.T) {
		doc, f := presenterForm(t)
		p := dom.NewPresenter(dom.WithPolicy(bluemonday.StrictPolicy()))
		email := control(t, f, "email")

		p.Show(email, `<b>Bad</b> input`)
		assert.Equal(t, "Bad input", p.Message(email))
		assert.NotContains(t, doc.String(), "<b>")
	})
}

func TestPresenter_Hooks(t *testing.T) {
	_, f := presenterForm(t)

	var calls []string
	p := dom.NewPresenter(dom.WithHooks(dom.Hooks{
		BeforeShow:   func(c *dom.Control, msg string) { calls = append(calls, "before-show:"+c.Key()+":"+msg) },
		AfterShow:    func(c *dom.Control, msg string) { calls = append(calls, "after-show:"+c.Key()) },
		BeforeRemove: func(c *dom.Control) { calls = append(calls, "before-remove:"+c.Key()) },
		AfterRemove:  func(c *dom.Control) { calls = append(calls, "after-remove:"+c.Key()) },
	}))

	email := control(t, f, "email")
	p.Show(email, "x")
	p.Remove(email)
	p.Remove(control(t, f, "terms"))

	assert.Equal(t, []string{
		"before-show:email:x",
		"after-show:email",
		"before-remove:email",
		"after-remove:email",
		"before-remove:terms",
		"after-remove:terms",
	}, calls)
}

func TestPresenter_Classes(t *testing.T) {
	doc, f := presenterForm(t)
	p := dom.NewPresenter(dom.WithFieldClass("is-invalid"), dom.WithErrorClass("invalid-feedback"))
	assert.Equal(t, "is-invalid", p.FieldClass())
	assert.Equal(t, "invalid-feedback", p.ErrorClass())

	p.Show(control(t, f, "email"), "x")
	assert.Contains(t, doc.String(), `class="is-invalid"`)
	assert.Contains(t, doc.String(), `<div class="invalid-feedback" id="error-for-email">x</div>`)

	p = dom.NewPresenter(dom.WithFieldClass(""))
	assert.Equal(t, dom.DefaultFieldClass, p.FieldClass())
}

func TestPresenter_ClearAll(t *testing.T) {
	doc, f := presenterForm(t)
	p := dom.NewPresenter()

	p.Show(control(t, f, "email"), "a")
	p.Show(control(t, f, "r1"), "b")
	require.Len(t, p.Shown(doc), 3)

	p.ClearAll(doc)
	assert.Empty(t, p.Shown(doc))
	assert.Empty(t, p.Message(control(t, f, "email")))
	assert.Empty(t, p.Message(control(t, f, "r2")))
}

func TestPresenter_SharedKeys(t *testing.T) {
	doc := parse(t, `<form id="login"><input name="email" type="email"></form>
<form id="signup"><input name="email" type="email"></form>`)
	login, ok := doc.FormByID("login")
	require.True(t, ok)
	signup, ok := doc.FormByID("signup")
	require.True(t, ok)
	p := dom.NewPresenter()

	a, b := control(t, login, "email"), control(t, signup, "email")
	p.Show(a, "Login message.")
	p.Show(b, "Signup message.")

	assert.Equal(t, 2, strings.Count(doc.String(), `id="error-for-email"`), "each form gets its own element")
	assert.Equal(t, "Login message.", p.Message(a))
	assert.Equal(t, "Signup message.", p.Message(b))
	assert.Contains(t, dom.NewDocument(signup.Node()).String(), "Signup message.")
	assert.NotContains(t, dom.NewDocument(login.Node()).String(), "Signup message.")

	p.Remove(b)
	assert.Empty(t, p.Message(b))
	assert.Equal(t, "Login message.", p.Message(a), "removing one form leaves the other")
	assert.True(t, p.HasError(a))
}

func TestPresenter_OutsideControl(t *testing.T) {
	doc := parse(t, `<form id="f"></form><p><input name="outside" form="f" required></p>`)
	f, ok := doc.FormByID("f")
	require.True(t, ok)
	p := dom.NewPresenter()
	c := control(t, f, "outside")

	p.Show(c, "First.")
	p.Show(c, "Second.")
	assert.Equal(t, 1, strings.Count(doc.String(), `id="error-for-outside"`))
	assert.Equal(t, "Second.", p.Message(c))
	assert.Contains(t, doc.String(), `<div class="error-message" id="error-for-outside">Second.</div></p>`)

	p.Remove(c)
	assert.Empty(t, p.Message(c))
}
