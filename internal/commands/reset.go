package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear today's clock times and breaks",
	Long: `Clear the clock-in, clock-out and every recorded break. The shift
length and theme are kept.`,
	Args: cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if !stdoutIsTerminal() {
				return fmt.Errorf("refusing to reset without confirmation; pass --yes")
			}
			if err := huh.NewConfirm().
				Title("Reset all data?").
				Description("Clock times and breaks will be cleared.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&yes).
				Run(); err != nil {
				return err
			}
		}
		if !yes {
			fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
			return nil
		}

		s.tracker.Reset()
		fmt.Fprintln(cmd.OutOrStdout(), "🔄 Reset complete")
		return nil
	}),
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
