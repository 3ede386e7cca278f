package cmd

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drafts/internal/adapters/editor"
	"drafts/internal/adapters/terminal"
	"drafts/internal/adapters/tui"
	"drafts/internal/application/commands"
	"drafts/internal/config"
	"drafts/internal/logging"
	"drafts/internal/ports"
)

var (
	watchInterval time.Duration
	watchPlain    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the drafts listing on screen, refreshing on an interval",
	Long: `Clear the screen and reprint the drafts listing every interval.

On an interactive terminal this opens a full-screen view (press ? for keys,
q to quit). Otherwise, or with --plain, the listing is reprinted until the
process is interrupted.

Examples:
  drafts watch
  drafts watch --interval 2s --plain`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lister := commands.NewListDraftsCommand(GetRepo())
		logging.Info("watching drafts", zap.String("dir", GetRepo().Root()), zap.Duration("interval", watchInterval))

		if watchPlain || !isatty.IsTerminal(os.Stdout.Fd()) {
			return terminal.NewWatcher(cmd.OutOrStdout(), lister, watchInterval).Run(ctx)
		}

		// The full-screen view owns the terminal
		if logCfg.OutputPath == "stderr" || logCfg.OutputPath == "stdout" {
			logging.Disable()
		}

		var ed ports.EditorOpener
		if opener := editor.NewOpener(); opener.Available() {
			ed = opener
		}

		app := tui.NewApp(lister, watchInterval, ed)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return app.Err()
	},
}

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", config.Interval(), "refresh interval")
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "reprint to stdout instead of opening the full-screen view")
	rootCmd.AddCommand(watchCmd)
}
