package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/balkashynov/shiftr/internal/format"
	"github.com/balkashynov/shiftr/internal/tracker"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		sess, err := s.tracker.ClockIn()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "⏱️  Clocked in at %s\n", format.Instant(sess.ClockIn))
		return nil
	}),
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		sess, err := s.tracker.ClockOut()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "⏹️  Clocked out at %s\n", format.Instant(sess.ClockOut))
		fmt.Fprintf(out, "Effective hours: %s\n", format.Minutes(s.tracker.Summary().Worked))
		return nil
	}),
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Clock in if clocked out, otherwise clock out",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		sess := s.tracker.ToggleClock()
		if sess.ClockOut == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "⏱️  Clocked in at %s\n", format.Instant(sess.ClockIn))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "⏹️  Clocked out at %s\n", format.Instant(sess.ClockOut))
		}
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the shift summary",
	Args:    cobra.NoArgs,
	RunE:    withTracker(runStatus),
}

func runStatus(cmd *cobra.Command, args []string, s *session) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}
	printStatus(cmd.OutOrStdout(), s)
	return nil
}

func printStatus(out io.Writer, s *session) {
	st := s.tracker.State()
	sum := s.tracker.Summary()

	state := color.New(color.FgYellow).Sprint("clocked out")
	if sum.ClockedIn {
		state = color.New(color.FgGreen).Sprint("clocked in")
	}

	fmt.Fprintf(out, "📅 %s  (%s)\n", st.Date, state)
	fmt.Fprintf(out, "  Clock In:        %s\n", format.Instant(st.Session.ClockIn))
	fmt.Fprintf(out, "  Clock Out:       %s\n", format.Instant(st.Session.ClockOut))
	fmt.Fprintf(out, "  Shift Length:    %s\n", format.Minutes(sum.ShiftMinutes))
	fmt.Fprintf(out, "  Gross Hours:     %s\n", format.Minutes(sum.Gross))
	fmt.Fprintf(out, "  Breaks:          %s\n", format.Minutes(sum.BreakMinutes))
	fmt.Fprintf(out, "  Effective Hours: %s\n", color.New(color.FgCyan).Sprint(format.Minutes(sum.Worked)))
	fmt.Fprintf(out, "  Remaining:       %s\n", format.Minutes(sum.Remaining))

	overtime := format.Minutes(sum.Overtime)
	if sum.Overtime > 0 {
		overtime = color.New(color.FgRed).Sprint(overtime)
	}
	fmt.Fprintf(out, "  Overtime:        %s\n", overtime)
	fmt.Fprintf(out, "  Expected End:    %s\n", format.Instant(sum.ExpectedEnd))
}

var setInCmd = &cobra.Command{
	Use:   "set-in <HH:MM[:SS]>",
	Short: "Set today's clock-in time (use --clear to remove it)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		if clearIn, _ := cmd.Flags().GetBool("clear"); clearIn {
			s.tracker.ClearClockIn()
			fmt.Fprintln(cmd.OutOrStdout(), "Clock in cleared")
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("a time is required unless --clear is given")
		}
		if err := s.tracker.SetClockIn(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Clock in set to %s\n", format.Instant(s.tracker.State().Session.ClockIn))
		return nil
	}),
}

var setOutCmd = &cobra.Command{
	Use:   "set-out <HH:MM[:SS]>",
	Short: "Set today's clock-out time (use --clear to remove it)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		if clearOut, _ := cmd.Flags().GetBool("clear"); clearOut {
			s.tracker.ClearClockOut()
			fmt.Fprintln(cmd.OutOrStdout(), "Clock out cleared")
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("a time is required unless --clear is given")
		}
		if err := s.tracker.SetClockOut(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Clock out set to %s\n", format.Instant(s.tracker.State().Session.ClockOut))
		return nil
	}),
}

var shiftCmd = &cobra.Command{
	Use:   "shift [hours]",
	Short: "Show or set the shift length in hours",
	Args:  cobra.MaximumNArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintf(out, "Shift length: %s\n", formatHours(s.tracker.State().ShiftLengthHours))
			return nil
		}

		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: %q", tracker.ErrInvalidShiftLength, args[0])
		}
		if err := s.tracker.SetShiftLength(hours); err != nil {
			return err
		}
		fmt.Fprintf(out, "Shift length set to %s\n", formatHours(hours))
		return nil
	}),
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle the dashboard between dark and light mode",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		mode := "light"
		if s.tracker.ToggleDarkMode() {
			mode = "dark"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
		return nil
	}),
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

func init() {
	statusCmd.Flags().Bool("no-color", false, "Disable colored output")
	setInCmd.Flags().Bool("clear", false, "Remove the clock-in time")
	setOutCmd.Flags().Bool("clear", false, "Remove the clock-out time")
}
