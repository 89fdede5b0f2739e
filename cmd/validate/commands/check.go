package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/pkg/dom"
	"github.com/dmitrymomot/validate/pkg/logger"
	"github.com/dmitrymomot/validate/pkg/messages"
	"github.com/dmitrymomot/validate/pkg/validity"
)

var (
	errBlocked       = errors.New("submission blocked")
	errInvalidSet    = errors.New("invalid --set value, want name=value")
	errNoSuchControl = errors.New("no such control")
)

// IsBlocked reports whether err only signals a blocked submission, which
// the report has already explained.
func IsBlocked(err error) bool {
	return errors.Is(err, errBlocked)
}

type checkOptions struct {
	sets          []string
	checks        []string
	selector      string
	messagesFile  string
	disableSubmit bool
	json          bool
	out           string
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <file|->",
		Short: "Submit every validated form of a document",
		Long: `Parse an HTML document, optionally fill in control values, and submit
every form matching the selector. Each invalid control gets the error
message a browser would display.

Exit codes:
  0 - every form may be submitted
  1 - a form is blocked or the document could not be processed`,
		Example: `  validate check page.html
  validate check page.html --set email=jane@example.com --set tags=go --set tags=web
  validate check page.html --check terms --check plan=pro --json
  cat page.html | validate check - --out annotated.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.sets, "set", nil, "set a control value as name=value (repeat for multi-selects)")
	f.StringArrayVar(&opts.checks, "check", nil, "check a checkbox or radio button as name or name=value")
	f.StringVar(&opts.selector, "selector", "", "CSS selector of forms to validate")
	f.StringVar(&opts.messagesFile, "messages", "", "YAML or JSON message catalog")
	f.BoolVar(&opts.disableSubmit, "disable-submit", false, "block submission even when valid")
	f.BoolVar(&opts.json, "json", false, "output results as JSON")
	f.StringVarP(&opts.out, "out", "o", "", "write the annotated document to this file")
	return cmd
}

func (a *app) runCheck(ctx context.Context, path string, opts *checkOptions, stdin io.Reader, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, documentKey{}, path)

	doc, err := readDocument(path, stdin)
	if err != nil {
		return err
	}

	v, err := a.validator(ctx, opts)
	if err != nil {
		return err
	}
	v.Init(doc)
	defer v.Destroy()

	if err := applyValues(doc.AllForms(), opts); err != nil {
		return err
	}

	result := checkResult{Path: path, Allowed: true}
	for _, f := range v.Forms() {
		sub := v.Submit(f)
		fr := formResult{Form: f.Key(), Allowed: sub.Allowed, Errors: sub.Report.Errors()}
		if sub.FirstInvalid != nil {
			fr.FirstInvalid = sub.FirstInvalid.Key()
		}
		result.Forms = append(result.Forms, fr)
		result.Allowed = result.Allowed && sub.Allowed
		a.log.DebugContext(ctx, "form checked", logger.Form(f.Key()), logger.Count(len(fr.Errors)))
	}

	if opts.out != "" {
		if err := writeDocument(opts.out, doc); err != nil {
			return err
		}
	}

	a.log.InfoContext(ctx, "document checked", logger.Count(len(result.Forms)))
	if err := report(w, result, opts.json); err != nil {
		return err
	}
	if !result.Allowed {
		return errBlocked
	}
	return nil
}

// validator builds a Validator from settings overridden by flags.
func (a *app) validator(ctx context.Context, opts *checkOptions) (*validate.Validator, error) {
	cfg := a.settings
	if opts.selector != "" {
		cfg.Selector = opts.selector
	}
	if opts.messagesFile != "" {
		cfg.MessagesFile = opts.messagesFile
	}
	cfg.DisableSubmit = cfg.DisableSubmit || opts.disableSubmit

	catalog, err := a.catalog(ctx, cfg.MessagesFile)
	if err != nil {
		return nil, err
	}

	engine := validity.New(
		validity.WithPatternCacheSize(cfg.PatternCacheSize),
		validity.WithPatternTimeout(cfg.PatternTimeout),
		validity.WithLogger(a.log.With(logger.Component("engine"))),
	)
	return validate.New(
		validate.WithConfig(cfg),
		validate.WithMessages(catalog),
		validate.WithEngine(engine),
		validate.WithLogger(a.log.With(logger.Component("validator"))),
	)
}

// catalog returns the default catalog merged with the file at path, if any.
func (a *app) catalog(ctx context.Context, path string) (messages.Catalog, error) {
	if path == "" {
		return messages.Default(), nil
	}
	c, err := messages.LoadFile(ctx, path)
	if err != nil {
		return messages.Catalog{}, err
	}
	a.log.DebugContext(ctx, "message catalog loaded", "path", path)
	return messages.Default().Merge(c), nil
}

func readDocument(path string, stdin io.Reader) (*dom.Document, error) {
	if path == "-" {
		return dom.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()
	return dom.Parse(f)
}

func writeDocument(path string, doc *dom.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// applyValues applies --set and --check flags to the controls of forms.
func applyValues(forms []*dom.Form, opts *checkOptions) error {
	var order []string
	values := make(map[string][]string)
	for _, s := range opts.sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("%w: %q", errInvalidSet, s)
		}
		if _, seen := values[name]; !seen {
			order = append(order, name)
		}
		values[name] = append(values[name], value)
	}

	for _, name := range order {
		c, ok := findControl(forms, name, "")
		if !ok {
			return fmt.Errorf("%w: %q", errNoSuchControl, name)
		}
		c.SetValue(values[name]...)
	}

	for _, s := range opts.checks {
		name, value, _ := strings.Cut(s, "=")
		c, ok := findControl(forms, name, value)
		if !ok || !c.Type().IsCheckable() {
			return fmt.Errorf("%w: %q", errNoSuchControl, s)
		}
		c.SetChecked(true)
	}
	return nil
}

// findControl returns the first control whose id or name is key. A non-empty
// value also has to match the control's value.
func findControl(forms []*dom.Form, key, value string) (*dom.Control, bool) {
	for _, f := range forms {
		for _, c := range f.Controls() {
			if c.ID() != key && c.Name() != key {
				continue
			}
			if value != "" && c.Value() != value {
				continue
			}
			return c, true
		}
	}
	return nil, false
}
