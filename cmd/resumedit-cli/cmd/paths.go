package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resumedit/internal/application/commands"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [query]",
	Short: "List editable fields",
	Long: `List every editable field with its key, kind and current value.

With a query, fields are ranked by fuzzy match on key or value.

Examples:
  resumedit-cli paths
  resumedit-cli paths email`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields []commands.FieldRef
		if len(args) == 0 {
			fields = commands.ListFields(GetStore().Current())
		} else {
			for _, r := range commands.NewSearchCommand(GetStore(), args[0]).Execute() {
				fields = append(fields, r.FieldRef)
			}
		}

		out := cmd.OutOrStdout()
		if len(fields) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, f := range fields {
			text, _, _ := strings.Cut(f.Text, "\n")
			fmt.Fprintf(out, "%-28s [%s] %s\n", f.Key, f.Kind, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
