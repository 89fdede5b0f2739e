package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validate/pkg/messages"
)

func newMessagesCmd(a *app) *cobra.Command {
	var (
		format string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Print the effective message catalog",
		Long: `Print the message templates used for each kind of failure: the built-in
English defaults merged with the catalog named by --messages or
VALIDATE_MESSAGES_FILE. The output is a valid catalog file.`,
		Example: `  validate messages > messages.yaml
  validate messages --messages custom.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := messages.ParseFormat(format)
			if err != nil {
				return err
			}
			if file == "" {
				file = a.settings.MessagesFile
			}
			c, err := a.catalog(cmd.Context(), file)
			if err != nil {
				return err
			}
			return messages.Encode(cmd.OutOrStdout(), c, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json")
	cmd.Flags().StringVar(&file, "messages", "", "YAML or JSON message catalog to merge")
	return cmd
}
