package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dmitrymomot/validate/pkg/form"
)

// checkResult is the output of the check command.
type checkResult struct {
	Path    string       `json:"path"`
	Allowed bool         `json:"allowed"`
	Forms   []formResult `json:"forms"`
}

type formResult struct {
	Form         string         `json:"form"`
	Allowed      bool           `json:"allowed"`
	FirstInvalid string         `json:"first_invalid,omitempty"`
	Errors       []form.Outcome `json:"errors,omitempty"`
}

func report(w io.Writer, result checkResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	if len(result.Forms) == 0 {
		fmt.Fprintln(w, color.YellowString("No forms to validate in %s", result.Path))
		return nil
	}

	field := color.New(color.FgRed).SprintFunc()
	muted := color.New(color.FgHiBlack).SprintfFunc()
	for _, f := range result.Forms {
		name := f.Form
		if name == "" {
			name = "(unnamed)"
		}
		switch {
		case len(f.Errors) > 0:
			fmt.Fprintf(w, "%s form %q: %s\n", color.RedString("✗"), name, color.RedString("%d error(s)", len(f.Errors)))
		case !f.Allowed:
			fmt.Fprintf(w, "%s form %q is valid, submission disabled\n", color.YellowString("!"), name)
		default:
			fmt.Fprintf(w, "%s form %q is valid\n", color.GreenString("✓"), name)
		}

		for _, o := range f.Errors {
			key := o.Name
			if key == "" {
				key = fmt.Sprintf("#%d", o.Index)
			}
			fmt.Fprintf(w, "  • %s: %s %s\n", field(key), o.Message, muted("(%s)", o.Flag))
		}
	}
	return nil
}
