// Package commands implements the CLI commands for validate.
package commands

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validate/pkg/config"
	"github.com/dmitrymomot/validate/pkg/logger"
)

const version = "0.1.0"

// app carries state shared by every command of one invocation.
type app struct {
	settings config.Settings
	log      *slog.Logger

	envFiles  []string
	logLevel  string
	logFormat string
	noColor   bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "validate",
		Short: "Check HTML forms against their constraint attributes",
		Long: `validate evaluates HTML5 form constraints (required, type, pattern,
min/max/step, minlength/maxlength) in an HTML document and renders the
error messages a browser using the validate library would show.

Settings are read from VALIDATE_* environment variables and optional .env
files; command-line flags take precedence.`,
		Example: `  # Check every [data-validate] form of a page
  validate check signup.html

  # Fill in values first, then write the annotated page
  validate check signup.html --set email=jane@example.com --check terms --out result.html

  # Print the message catalog as JSON
  validate messages --format json`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetVersionTemplate("validate version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load settings from .env file(s)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newCheckCmd(a), newMessagesCmd(a))
	return root
}

// setup loads settings and configures logging. Flags override settings.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(a.envFiles...); err != nil {
		return err
	}
	if err := config.Load(&a.settings); err != nil {
		return err
	}

	if a.logLevel != "" {
		a.settings.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		a.settings.LogFormat = a.logFormat
	}
	level, err := logger.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.settings.LogFormat)
	if err != nil {
		return err
	}

	if a.noColor {
		color.NoColor = true
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("document", documentKey{}),
	)
	return nil
}

// documentKey stores the path of the checked document in the context.
type documentKey struct{}
