package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/balkashynov/shiftr/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the live shift dashboard",
	Long: `Open the interactive dashboard: a live clock of worked time, the shift
summary and today's breaks.

When stdout is not a terminal the plain status summary is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return withTracker(runStatus)(cmd, args)
	}

	s, err := openSession(nil, true)
	if err != nil {
		return err
	}
	defer s.close()

	return tui.RunDashboard(s.tracker, s.cfg.ExportDir)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
