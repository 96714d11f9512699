package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumedit/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the résumé as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := commands.NewShowCommand(GetStore()).Execute()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print one value of the résumé",
	Long: `Print the value at a dotted path.

Text is printed verbatim, tag lists as a comma separated list and lists or
records as JSON.

Examples:
  resumedit-cli get contact.email
  resumedit-cli get skills.core
  resumedit-cli get work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewGetFieldCommand(GetStore(), args[0]).Execute()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Replace one value of the résumé",
	Long: `Replace the value at a dotted path.

Tag lists accept a comma separated list or a JSON array. Lists and records
must be JSON. A value of "-" is read from standard input.

Examples:
  resumedit-cli set contact.email me@example.com
  resumedit-cli set skills.tools "Docker, Terraform"
  resumedit-cli set summary - < summary.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := readValue(cmd, args[1])
		if err != nil {
			return err
		}

		result, err := commands.NewSetFieldCommand(GetStore(), args[0], value).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
}
