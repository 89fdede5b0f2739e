package validate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/pkg/config"
	"github.com/dmitrymomot/validate/pkg/dom"
	"github.com/dmitrymomot/validate/pkg/form"
	"github.com/dmitrymomot/validate/pkg/logger"
	"github.com/dmitrymomot/validate/pkg/messages"
	"github.com/dmitrymomot/validate/pkg/validity"
)

const page = `<!doctype html>
<html><body>
<form id="signup" data-validate>
  <input id="email" name="email" type="email" required>
  <input id="age" name="age" type="number" min="5" max="10" step="1" value="7">
  <input type="checkbox" id="terms" name="terms" required><label for="terms">I agree</label>
  <input type="radio" id="r1" name="plan" value="free" required>
  <input type="radio" id="r2" name="plan" value="pro">
  <input type="submit" value="Go">
</form>
<form id="plain"><input id="q" name="q" required></form>
</body></html>`

type fixture struct {
	doc    *dom.Document
	signup *dom.Form
	plain  *dom.Form
}

func setup(t *testing.T) fixture {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	signup, ok := doc.FormByID("signup")
	require.True(t, ok)
	plain, ok := doc.FormByID("plain")
	require.True(t, ok)
	return fixture{doc: doc, signup: signup, plain: plain}
}

func (f fixture) control(t *testing.T, key string) *dom.Control {
	t.Helper()
	for _, fm := range []*dom.Form{f.signup, f.plain} {
		if c, ok := fm.Control(key); ok {
			return c
		}
	}
	t.Fatalf("control %q not found", key)
	return nil
}

func newValidator(t *testing.T, opts ...validate.Option) *validate.Validator {
	t.Helper()
	v, err := validate.New(opts...)
	require.NoError(t, err)
	return v
}

// fillValid puts every control of the signup form into a valid state.
func (f fixture) fillValid(t *testing.T) {
	t.Helper()
	f.control(t, "email").SetValue("jane@example.com")
	f.control(t, "terms").SetChecked(true)
	f.control(t, "r2").SetChecked(true)
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := newValidator(t)
		assert.Equal(t, validate.DefaultSelector, v.Selector())
		assert.Equal(t, messages.Default(), v.Catalog())
		assert.Nil(t, v.Document())
	})

	t.Run("invalid selector", func(t *testing.T) {
		_, err := validate.New(validate.WithSelector("form["))
		assert.ErrorIs(t, err, dom.ErrInvalidSelector)
	})

	t.Run("messages are merged", func(t *testing.T) {
		v := newValidator(t,
			validate.WithMessages(messages.Catalog{ValueMissing: "Required."}),
			validate.WithMessages(messages.Catalog{BadInput: "Numbers only."}),
		)
		c := v.Catalog()
		assert.Equal(t, "Required.", c.ValueMissing)
		assert.Equal(t, "Numbers only.", c.BadInput)
		assert.Equal(t, messages.Default().TypeMismatchEmail, c.TypeMismatchEmail)
	})

	t.Run("config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Selector = "#plain"
		v := newValidator(t, validate.WithConfig(cfg))
		assert.Equal(t, "#plain", v.Selector())
	})
}

func TestInitDestroy(t *testing.T) {
	f := setup(t)
	v := newValidator(t)

	v.Init(nil)
	assert.Nil(t, v.Document())
	_, ok := v.Blur(f.control(t, "email"))
	assert.False(t, ok, "a detached validator ignores events")

	assert.Nil(t, v.Forms())

	v.Init(f.doc)
	assert.Same(t, f.doc, v.Document())
	require.Len(t, v.Forms(), 1)
	assert.True(t, v.Forms()[0].Is(f.signup))
	assert.True(t, f.signup.NoValidate())
	assert.False(t, f.plain.NoValidate())

	email := f.control(t, "email")
	_, ok = v.Blur(email)
	require.True(t, ok)
	assert.Contains(t, f.doc.String(), `id="error-for-email"`)

	v.Destroy()
	assert.Nil(t, v.Document())
	assert.False(t, f.signup.NoValidate())
	assert.NotContains(t, f.doc.String(), `class="error"`)
	assert.Contains(t, f.doc.String(), `style="display: none; visibility: hidden"`)

	_, ok = v.Blur(email)
	assert.False(t, ok)
	v.Destroy()
}

func TestInit_Reattach(t *testing.T) {
	first, second := setup(t), setup(t)
	v := newValidator(t)

	v.Init(first.doc)
	v.Init(second.doc)
	assert.False(t, first.signup.NoValidate(), "previous document is released")
	assert.True(t, second.signup.NoValidate())

	_, ok := v.Blur(first.control(t, "email"))
	assert.False(t, ok, "controls of other documents are ignored")
}

func TestBlur(t *testing.T) {
	f := setup(t)
	v := newValidator(t)
	v.Init(f.doc)
	email := f.control(t, "email")

	o, ok := v.Blur(email)
	require.True(t, ok)
	assert.Equal(t, validity.ValueMissing, o.Flag)
	assert.Equal(t, "Please fill out this field.", o.Message)
	assert.Contains(t, f.doc.String(),
		`<div class="error-message" id="error-for-email">Please fill out this field.</div>`)

	email.SetValue("abc")
	o, _ = v.Blur(email)
	assert.Equal(t, validity.TypeMismatch, o.Flag)
	assert.Contains(t, f.doc.String(), `>Please enter an email address.</div>`)

	email.SetValue("jane@example.com")
	o, _ = v.Blur(email)
	assert.False(t, o.Invalid())
	assert.Empty(t, v.HasError(email))
	assert.Contains(t, f.doc.String(),
		`<div class="error-message" id="error-for-email" style="display: none; visibility: hidden"></div>`)
	assert.NotContains(t, f.doc.String(), `aria-describedby`)
}

func TestBlur_Number(t *testing.T) {
	f := setup(t)
	v := newValidator(t)
	v.Init(f.doc)
	age := f.control(t, "age")

	o, ok := v.Blur(age)
	require.True(t, ok)
	assert.False(t, o.Invalid(), "7 lies inside 5..10")

	age.SetValue("12")
	o, _ = v.Blur(age)
	assert.Equal(t, validity.RangeOverflow, o.Flag)
	assert.Equal(t, "Please select a value that is no more than 10.", o.Message)

	age.SetValue("six")
	o, _ = v.Blur(age)
	assert.Equal(t, validity.BadInput, o.Flag)
	assert.Equal(t, "Please enter a number.", o.Message)
}

func TestBlur_UnvalidatedForm(t *testing.T) {
	f := setup(t)
	v := newValidator(t)
	v.Init(f.doc)

	q := f.control(t, "q")
	_, ok := v.Blur(q)
	assert.False(t, ok)
	assert.NotContains(t, f.doc.String(), "error-for-q")
	assert.Equal(t, "Please fill out this field.", v.HasError(q), "HasError evaluates any control")
}

func TestClick(t *testing.T) {
	f := setup(t)
	v := newValidator(t)
	v.Init(f.doc)

	_, ok := v.Click(f.control(t, "email"))
	assert.False(t, ok, "only checkboxes and radio buttons react to clicks")

	terms := f.control(t, "terms")
	o, ok := v.Click(terms)
	require.True(t, ok)
	assert.Equal(t, "Please fill out this field.", o.Message)
	assert.Contains(t, f.doc.String(), `I agree</label><div class="error-message" id="error-for-terms">`)

	terms.SetChecked(true)
	o, _ = v.Click(terms)
	assert.False(t, o.Invalid())

	r1 := f.control(t, "r1")
	o, _ = v.Click(r1)
	assert.Equal(t, validity.ValueMissing, o.Flag, "group is required through r1")
	assert.Contains(t, f.doc.String(), `id="error-for-r2"`)

	f.control(t, "r2").SetChecked(true)
	o, _ = v.Click(r1)
	assert.False(t, o.Invalid())
	assert.NotContains(t, f.doc.String(), `class="error"`)
}

func TestSubmit(t *testing.T) {
	t.Run("blocked with errors", func(t *testing.T) {
		f := setup(t)
		called := false
		v := newValidator(t, validate.WithOnSubmit(func(*dom.Form, form.Report) { called = true }))
		v.Init(f.doc)

		sub := v.Submit(f.signup)
		assert.False(t, sub.Allowed)
		assert.False(t, called)
		require.NotNil(t, sub.FirstInvalid)
		assert.Equal(t, "email", sub.FirstInvalid.Key())
		assert.Equal(t, 0, sub.Report.FirstInvalid)

		assert.True(t, sub.Errors.Has("email"))
		assert.True(t, sub.Errors.Has("terms"))
		assert.Equal(t, []string{"Please fill out this field."}, sub.Errors["plan"], "a radio group is one entry")
		assert.False(t, sub.Errors.Has("r1"))
		assert.False(t, sub.Errors.Has("r2"))
		assert.False(t, sub.Errors.Has("age"))
		assert.Equal(t, []string{"email", "plan", "terms"}, sub.Errors.Keys())
		require.Error(t, sub.Err())
		assert.Contains(t, sub.Err().Error(), "email: Please fill out this field.")

		out := f.doc.String()
		assert.Contains(t, out, `id="error-for-email"`)
		assert.Contains(t, out, `id="error-for-terms"`)
		assert.Contains(t, out, `id="error-for-r2"`)
	})

	t.Run("allowed after fixing", func(t *testing.T) {
		f := setup(t)
		var got form.Report
		calls := 0
		v := newValidator(t, validate.WithOnSubmit(func(fm *dom.Form, r form.Report) {
			calls++
			got = r
			assert.True(t, fm.Is(f.signup))
		}))
		v.Init(f.doc)

		require.False(t, v.Submit(f.signup).Allowed)
		f.fillValid(t)

		sub := v.Submit(f.signup)
		assert.True(t, sub.Allowed)
		assert.Nil(t, sub.FirstInvalid)
		assert.NoError(t, sub.Err())
		assert.Equal(t, 1, calls)
		assert.True(t, got.Valid())
		assert.NotContains(t, f.doc.String(), `class="error"`)
	})

	t.Run("disable submit", func(t *testing.T) {
		f := setup(t)
		called := false
		v := newValidator(t,
			validate.WithDisableSubmit(true),
			validate.WithOnSubmit(func(*dom.Form, form.Report) { called = true }),
		)
		v.Init(f.doc)
		f.fillValid(t)

		sub := v.Submit(f.signup)
		assert.False(t, sub.Allowed)
		assert.Nil(t, sub.FirstInvalid)
		assert.True(t, called, "callback still runs for a valid form")
	})

	t.Run("unvalidated form", func(t *testing.T) {
		f := setup(t)
		v := newValidator(t)
		v.Init(f.doc)

		sub := v.Submit(f.plain)
		assert.True(t, sub.Allowed)
		assert.NoError(t, sub.Err())
		assert.NotContains(t, f.doc.String(), "error-for-q")
	})

	t.Run("custom selector", func(t *testing.T) {
		f := setup(t)
		v := newValidator(t, validate.WithSelector("#plain"))
		v.Init(f.doc)

		assert.False(t, v.Submit(f.plain).Allowed)
		assert.True(t, v.Submit(f.signup).Allowed)
	})
}

func TestOptions(t *testing.T) {
	t.Run("classes and messages", func(t *testing.T) {
		f := setup(t)
		v := newValidator(t,
			validate.WithFieldClass("is-invalid"),
			validate.WithErrorClass("invalid-feedback"),
			validate.WithMessages(messages.Catalog{ValueMissing: "Required."}),
		)
		v.Init(f.doc)

		v.Blur(f.control(t, "email"))
		out := f.doc.String()
		assert.Contains(t, out, `class="is-invalid"`)
		assert.Contains(t, out, `<div class="invalid-feedback" id="error-for-email">Required.</div>`)
	})

	t.Run("hooks", func(t *testing.T) {
		f := setup(t)
		var calls []string
		v := newValidator(t, validate.WithHooks(dom.Hooks{
			BeforeShow:   func(c *dom.Control, msg string) { calls = append(calls, "before-show:"+c.Key()) },
			AfterShow:    func(c *dom.Control, msg string) { calls = append(calls, "after-show:"+c.Key()) },
			BeforeRemove: func(c *dom.Control) { calls = append(calls, "before-remove:"+c.Key()) },
			AfterRemove:  func(c *dom.Control) { calls = append(calls, "after-remove:"+c.Key()) },
		}))
		v.Init(f.doc)

		email := f.control(t, "email")
		v.Blur(email)
		email.SetValue("jane@example.com")
		v.Blur(email)

		assert.Equal(t, []string{
			"before-show:email",
			"after-show:email",
			"before-remove:email",
			"after-remove:email",
		}, calls)
	})

	t.Run("engine", func(t *testing.T) {
		f := setup(t)
		v := newValidator(t, validate.WithEngine(validity.New(validity.WithPatternCacheSize(1))))
		v.Init(f.doc)
		_, ok := v.Blur(f.control(t, "email"))
		assert.True(t, ok)
	})
}

func TestCustomValidity(t *testing.T) {
	f := setup(t)
	v := newValidator(t)
	v.Init(f.doc)
	email := f.control(t, "email")
	email.SetValue("jane@example.com")

	email.SetCustomValidity("This address is already registered.")
	o, _ := v.Blur(email)
	assert.Equal(t, validity.CustomError, o.Flag)
	assert.Equal(t, "This address is already registered.", o.Message)

	email.SetCustomValidity("")
	o, _ = v.Blur(email)
	assert.False(t, o.Invalid())
}

func TestShowRemoveError(t *testing.T) {
	f := setup(t)
	v := newValidator(t)
	email := f.control(t, "email")

	v.ShowError(email, "Server says no.")
	assert.Contains(t, f.doc.String(), `>Server says no.</div>`)

	v.RemoveError(email)
	assert.NotContains(t, f.doc.String(), "Server says no.")
}

const twoForms = `<form id="login" data-validate>
  <input name="email" type="email" required>
</form>
<form id="signup" data-validate>
  <input name="email" type="email" required>
  <input name="age" type="number" min="1_0" max="0x20" step="0b1" value="12">
</form>`

func TestSubmit_MultipleForms(t *testing.T) {
	doc, err := dom.ParseString(twoForms)
	require.NoError(t, err)
	login, ok := doc.FormByID("login")
	require.True(t, ok)
	signup, ok := doc.FormByID("signup")
	require.True(t, ok)

	v := newValidator(t)
	v.Init(doc)
	require.Len(t, v.Forms(), 2)

	loginEmail, ok := login.Control("email")
	require.True(t, ok)
	signupEmail, ok := signup.Control("email")
	require.True(t, ok)

	require.False(t, v.Submit(login).Allowed)
	signupEmail.SetValue("bad")
	sub := v.Submit(signup)
	require.False(t, sub.Allowed)
	assert.Equal(t, []string{"email"}, sub.Errors.Keys(), "malformed bounds on age are ignored")

	out := doc.String()
	assert.Equal(t, 2, strings.Count(out, `id="error-for-email"`))
	assert.Contains(t, out, "Please fill out this field.")
	assert.Contains(t, out, "Please enter an email address.")
	assert.Equal(t, "Please fill out this field.", v.HasError(loginEmail))
	assert.Equal(t, "Please enter an email address.", v.HasError(signupEmail))

	signupEmail.SetValue("jane@example.com")
	assert.True(t, v.Submit(signup).Allowed)
	out = doc.String()
	assert.NotContains(t, out, "Please enter an email address.")
	assert.Contains(t, out, "Please fill out this field.", "the login form keeps its message")
}

func TestSubmit_Logging(t *testing.T) {
	f := setup(t)
	var buf bytes.Buffer
	v := newValidator(t, validate.WithLogger(logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
	)))
	v.Init(f.doc)

	v.Submit(f.signup)
	out := buf.String()
	assert.Contains(t, out, `"msg":"form submitted"`)
	assert.Contains(t, out, `"invalid":{"email":"valueMissing","terms":"valueMissing","plan":"valueMissing"}`)
}
