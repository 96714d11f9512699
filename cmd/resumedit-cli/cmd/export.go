package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumedit/internal/adapters/clipboard"
	"resumedit/internal/application/commands"
	"resumedit/internal/ports"
)

var (
	exportOutput      string
	exportNoClipboard bool
	resetYes          bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the résumé to a JSON file",
	Long: `Write the résumé as indented JSON, by default to the configured export
file (resume-data.json). The JSON is also copied to the clipboard when one
is available.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output := exportOutput
		if output == "" {
			output = cfg.ExportFile
		}

		var cb ports.Clipboard
		if !exportNoClipboard {
			cb = clipboard.System{}
		}

		result, err := commands.NewExportCommand(GetStore(), cb, output).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default résumé",
	Long: `Discard the stored résumé and restore the default one.

This cannot be undone. Pass --yes to confirm.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewResetCommand(GetStore(), resetYes).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default from RESUMEDIT_EXPORT_FILE)")
	exportCmd.Flags().BoolVar(&exportNoClipboard, "no-clipboard", false, "do not copy the JSON to the clipboard")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm the reset")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
