// Package validate adds HTML5 constraint validation with custom error
// messages to server-rendered or stored HTML documents.
//
// A Validator is configured once with functional options and attached to a
// parsed document with Init. Forms matching its selector (by default
// "[data-validate]") get the novalidate attribute so the browser's own
// bubbles stay hidden. The event methods then mirror what a page would do:
//
//	v, err := validate.New(
//		validate.WithMessages(messages.Catalog{ValueMissing: "Required."}),
//		validate.WithOnSubmit(func(f *dom.Form, r form.Report) { ... }),
//	)
//	if err != nil {
//		return err
//	}
//
//	doc, err := dom.ParseString(page)
//	if err != nil {
//		return err
//	}
//	v.Init(doc)
//
//	f, _ := doc.FormByID("signup")
//	email, _ := f.Control("email")
//	email.SetValue("jane@")
//	v.Blur(email)       // shows "Please enter an email address."
//
//	sub := v.Submit(f)  // shows every error
//	if !sub.Allowed {
//		return sub.Err()
//	}
//
// Blur and Click evaluate a single control; Click only reacts to checkboxes
// and radio buttons. Submit evaluates every control, returns the first
// invalid one as the focus target, and calls the on-submit callback when
// nothing is invalid. Destroy removes every shown error and the novalidate
// attributes.
//
// Evaluation lives in pkg/validity, message templates in pkg/messages and
// DOM mutation in pkg/dom; this package only wires them to a document.
package validate
