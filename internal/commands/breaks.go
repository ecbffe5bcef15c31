package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/balkashynov/shiftr/internal/format"
	"github.com/balkashynov/shiftr/internal/tracker"
)

var breakCmd = &cobra.Command{
	Use:     "break",
	Aliases: []string{"b"},
	Short:   "Manage today's breaks",
}

var breakAddCmd = &cobra.Command{
	Use:   "add [start end]",
	Short: "Record a break (prompts when times are omitted)",
	Long: `Record a break. Times are 24-hour HH:MM or HH:MM:SS.

Examples:
  shiftr break add 12:00 12:30
  shiftr break add              # opens a form`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected a start and an end time, got %d argument(s)", len(args))
		}
		return nil
	},
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		var start, end string
		if len(args) == 2 {
			start, end = args[0], args[1]
		} else {
			noUI, _ := cmd.Flags().GetBool("no-ui")
			if noUI || !stdoutIsTerminal() {
				return tracker.ErrMissingField
			}
			if err := breakForm(&start, &end).Run(); err != nil {
				return err
			}
		}

		b, err := s.tracker.AddBreak(start, end)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "☕ Added break #%d: %s\n", b.ID, breakLine(b.Start, b.End, b.DurationMinutes))
		return nil
	}),
}

var breakListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List today's breaks",
	Args:    cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		out := cmd.OutOrStdout()
		breaks := s.tracker.Today()
		if len(breaks) == 0 {
			fmt.Fprintln(out, "No breaks recorded today")
			return nil
		}

		total := 0
		for _, b := range breaks {
			fmt.Fprintf(out, "#%-14d %s\n", b.ID, breakLine(b.Start, b.End, b.DurationMinutes))
			total += b.DurationMinutes
		}
		fmt.Fprintf(out, "Total: %s\n", format.Duration(total))
		return nil
	}),
}

var breakEditCmd = &cobra.Command{
	Use:   "edit <id> <start> <end>",
	Short: "Change the times of a break",
	Args:  cobra.ExactArgs(3),
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		id, err := parseBreakID(args[0])
		if err != nil {
			return err
		}
		if err := s.tracker.EditBreak(id, args[1], args[2]); err != nil {
			return err
		}

		b, _ := s.tracker.State().Breaks.Get(id)
		fmt.Fprintf(cmd.OutOrStdout(), "✏️  Updated break #%d: %s\n", b.ID, breakLine(b.Start, b.End, b.DurationMinutes))
		return nil
	}),
}

var breakRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a break",
	Args:    cobra.ExactArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, s *session) error {
		id, err := parseBreakID(args[0])
		if err != nil {
			return err
		}
		if !s.tracker.DeleteBreak(id) {
			return fmt.Errorf("%w: #%d", tracker.ErrBreakNotFound, id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted break #%d\n", id)
		return nil
	}),
}

func breakForm(start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			timeInput("Start Time", "12:00", start),
			timeInput("End Time", "12:30", end),
		),
	).WithShowHelp(false)
}

func timeInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateTimeOfDay)
}

func validateTimeOfDay(s string) error {
	if s == "" {
		return tracker.ErrMissingField
	}
	if _, err := tracker.ParseTimeOfDay(s); err != nil {
		return errors.New("use HH:MM or HH:MM:SS")
	}
	return nil
}

func parseBreakID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid break ID '%s'", s)
	}
	return id, nil
}

func breakLine(start, end string, minutes int) string {
	return fmt.Sprintf("%s → %s | %s", format.TimeOfDay(start), format.TimeOfDay(end), format.Duration(minutes))
}

func init() {
	breakAddCmd.Flags().Bool("no-ui", false, "Never prompt for missing times")

	breakCmd.AddCommand(breakAddCmd)
	breakCmd.AddCommand(breakListCmd)
	breakCmd.AddCommand(breakEditCmd)
	breakCmd.AddCommand(breakRemoveCmd)
}
