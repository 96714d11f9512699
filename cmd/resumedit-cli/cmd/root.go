package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"resumedit/internal/application"
	"resumedit/internal/bootstrap"
	"resumedit/internal/config"
	"resumedit/internal/logging"
)

var (
	dataDir  string
	storage  string
	cfg      *config.Config
	logger   *logrus.Logger
	rt       *bootstrap.Runtime
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "resumedit-cli",
	Short: "CLI for editing a résumé document",
	Long: `resumedit-cli reads and edits the résumé stored by resumedit.

Every change is written to local storage immediately. Top-level values are
addressed by dotted paths (e.g. contact.email), list elements by section,
index and field (e.g. work 0 title).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if storage != "" {
			cfg.Storage = storage
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, closeLog, err = logging.New(cfg.LogLevel, cfg.LogFile, os.Stderr)
		if err != nil {
			return err
		}

		// There is no viewing surface here, so the store starts in editing mode
		rt, err = bootstrap.Open(cmd.Context(), cfg, logger, application.WithInitialMode(application.ModeEditing))
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdown()
	},
}

func shutdown() error {
	var err error
	if rt != nil {
		err = rt.Close()
		rt = nil
	}
	if closeLog != nil {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
		closeLog = nil
	}
	return err
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if cerr := shutdown(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "data directory (overrides RESUMEDIT_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "storage backend: sqlite or file (overrides RESUMEDIT_STORAGE)")
}

// GetStore returns the initialized document store
func GetStore() *application.Store {
	return rt.Store
}
