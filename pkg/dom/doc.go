// Package dom binds the validity engine to an HTML document tree.
//
// Documents are parsed with golang.org/x/net/html. Forms are found by CSS
// selector (github.com/andybalholm/cascadia), and each Control reads its
// live state into a validity.Field on demand, applying the browser value
// sanitization rules first.
//
// The Presenter is the side-effecting half: it inserts or reuses a
// `<div class="error-message" id="error-for-{id}">` next to the control,
// toggles the field class (on every member of a radio group), links the two
// with aria-describedby, and hides the message again on Remove. Messages may
// contain inline markup, which is sanitized with bluemonday before it is
// added to the tree. Four hooks run around every show and remove.
//
//	doc, err := dom.ParseString(page)
//	forms, err := doc.Forms("[data-validate]")
//	p := dom.NewPresenter()
//	for _, c := range forms[0].Controls() {
//		p.Show(c, "Please fill out this field.")
//	}
//	doc.Render(os.Stdout)
package dom
