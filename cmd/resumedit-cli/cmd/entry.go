package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"resumedit/internal/application/commands"
)

var setEntryCmd = &cobra.Command{
	Use:   "set-entry <section> <index> <field> <value>",
	Short: "Replace one field of a list element",
	Long: `Replace one field of an element of education, work, projects or
contact.social. A value of "-" is read from standard input.

Examples:
  resumedit-cli set-entry work 0 title "Staff Engineer"
  resumedit-cli set-entry projects 1 techStack "Go, SQLite"
  resumedit-cli set-entry projects 1 link.href https://example.com`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		value, err := readValue(cmd, args[3])
		if err != nil {
			return err
		}

		setCmd := commands.NewSetEntryFieldCommand(GetStore(), args[0], index, args[2], value)
		result, err := setCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var addEntryCmd = &cobra.Command{
	Use:   "add-entry <section>",
	Short: "Append an empty element to a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddEntryCommand(GetStore(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var removeEntryCmd = &cobra.Command{
	Use:   "remove-entry <section> <index>",
	Short: "Remove an element from a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}

		result, err := commands.NewRemoveEntryCommand(GetStore(), args[0], index).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a number", s)
	}
	return index, nil
}

// readValue returns arg, or standard input when arg is "-"
func readValue(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read value from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func init() {
	rootCmd.AddCommand(setEntryCmd)
	rootCmd.AddCommand(addEntryCmd)
	rootCmd.AddCommand(removeEntryCmd)
}
