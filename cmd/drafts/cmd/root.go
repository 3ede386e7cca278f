package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"drafts/internal/adapters/filesystem"
	"drafts/internal/config"
	"drafts/internal/logging"
	"drafts/internal/ports"
)

var (
	draftsDir string
	logCfg    logging.Config
	repo      ports.DraftRepository
)

var rootCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List and publish blog drafts",
	Long: `drafts lists the files waiting in a drafts directory.

It can print the listing once, keep it on screen refreshing on an
interval, or publish a draft into the posts directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := logging.Init(logCfg); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		repo = filesystem.NewRepository(draftsDir)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel its context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&draftsDir, "dir", "d", config.DraftsDir(), "path to the drafts directory")
	rootCmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logCfg.Format, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&logCfg.OutputPath, "log-output", "stderr", "log destination (stderr, stdout, or a file path)")
}

// GetRepo returns the initialized repository
func GetRepo() ports.DraftRepository {
	return repo
}
