package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/shiftr/internal/clock"
	"github.com/balkashynov/shiftr/internal/tracker"
)

func setupEnv(t *testing.T, store string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("SHIFTR_HOME", home)
	t.Setenv("SHIFTR_STORE", store)
	t.Setenv("SHIFTR_SAVE_DEBOUNCE", "0s")
	t.Setenv("SHIFTR_LUNCH_MINUTES", "0")
	t.Setenv("SHIFTR_DEFAULT_SHIFT_HOURS", "9")
	t.Setenv("SHIFTR_EXPORT_DIR", home)
	t.Setenv("SHIFTR_LOG_LEVEL", "error")

	setNow(t, 13, 0)
	return home
}

func setNow(t *testing.T, h, m int) {
	t.Helper()
	prev := now
	now = clock.Fixed{T: time.Date(2026, 10, 19, h, m, 0, 0, time.Local)}
	t.Cleanup(func() { now = prev })
}

// resetFlags puts every flag back to its default; cobra keeps parsed values
// between Execute calls on the same command tree.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, "shiftr %v", args)
	return out
}

func TestCommands_StatePersistsAcrossInvocations(t *testing.T) {
	for _, store := range []string{"json", "sqlite"} {
		t.Run(store, func(t *testing.T) {
			setupEnv(t, store)

			mustRun(t, "set-in", "09:00")
			mustRun(t, "break", "add", "12:00", "12:30")

			out := mustRun(t, "status", "--no-color")
			assert.Contains(t, out, "Gross Hours:     4h 0m")
			assert.Contains(t, out, "Breaks:          0h 30m")
			assert.Contains(t, out, "Effective Hours: 3h 30m")
			assert.Contains(t, out, "Remaining:       5h 30m")
			assert.Contains(t, out, "Overtime:        0h 0m")
			assert.Contains(t, out, "Expected End:    06:30:00 PM")
		})
	}
}

func TestCommands_ClockInOut(t *testing.T) {
	setupEnv(t, "json")

	out := mustRun(t, "in")
	assert.Contains(t, out, "Clocked in at 01:00:00 PM")

	_, err := run(t, "in")
	assert.Error(t, err)

	setNow(t, 14, 30)
	out = mustRun(t, "out")
	assert.Contains(t, out, "Clocked out at 02:30:00 PM")
	assert.Contains(t, out, "Effective hours: 1h 30m")

	_, err = run(t, "out")
	assert.Error(t, err)

	out = mustRun(t, "toggle")
	assert.Contains(t, out, "Clocked in at 02:30:00 PM")
}

func TestCommands_BreakLifecycle(t *testing.T) {
	setupEnv(t, "json")

	mustRun(t, "break", "add", "15:00", "15:10")
	mustRun(t, "break", "add", "12:00", "12:30")

	out := mustRun(t, "break", "ls")
	assert.Less(t, bytes.Index([]byte(out), []byte("12:00:00 PM")), bytes.Index([]byte(out), []byte("03:00:00 PM")))
	assert.Contains(t, out, "Total: 40 mins")

	_, err := run(t, "break", "add", "13:00", "12:00")
	assert.ErrorIs(t, err, tracker.ErrInvalidInterval)

	_, err = run(t, "break", "add", "--no-ui")
	assert.ErrorIs(t, err, tracker.ErrMissingField)

	_, err = run(t, "break", "rm", "42")
	assert.ErrorIs(t, err, tracker.ErrBreakNotFound)

	_, err = run(t, "break", "edit", "42", "10:00", "10:15")
	assert.ErrorIs(t, err, tracker.ErrBreakNotFound)

	_, err = run(t, "break", "rm", "abc")
	assert.Error(t, err)
}

func TestCommands_ShiftAndTheme(t *testing.T) {
	setupEnv(t, "json")

	assert.Contains(t, mustRun(t, "shift"), "Shift length: 9h")
	assert.Contains(t, mustRun(t, "shift", "7.5"), "Shift length set to 7.5h")
	assert.Contains(t, mustRun(t, "shift"), "Shift length: 7.5h")

	_, err := run(t, "shift", "0")
	assert.ErrorIs(t, err, tracker.ErrInvalidShiftLength)
	_, err = run(t, "shift", "lots")
	assert.ErrorIs(t, err, tracker.ErrInvalidShiftLength)

	assert.Contains(t, mustRun(t, "theme"), "light")
	assert.Contains(t, mustRun(t, "theme"), "dark")
}

func TestCommands_ExportAndReset(t *testing.T) {
	home := setupEnv(t, "json")

	assert.Contains(t, mustRun(t, "export"), "No breaks to export")

	mustRun(t, "in")
	mustRun(t, "break", "add", "12:00", "12:30")
	mustRun(t, "export")

	data, err := os.ReadFile(filepath.Join(home, "breaks_2026-10-19.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Start Time,End Time,Duration\n2026-10-19,12:00:00,12:30:00,30 mins\n", string(data))

	mustRun(t, "shift", "8")
	mustRun(t, "reset", "--yes")

	out := mustRun(t, "status", "--no-color")
	assert.Contains(t, out, "Clock In:        ---")
	assert.Contains(t, out, "Shift Length:    8h 0m")
	assert.Contains(t, mustRun(t, "break", "ls"), "No breaks recorded today")
}

func TestCommands_Version(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	assert.Contains(t, mustRun(t, "version"), "shiftr 1.2.3")
}

func TestCommands_CorruptDatabaseStartsFresh(t *testing.T) {
	home := setupEnv(t, "sqlite")
	garbage := bytes.Repeat([]byte("definitely not sqlite\n"), 30)
	require.NoError(t, os.WriteFile(filepath.Join(home, "shiftr.db"), garbage, 0644))

	out := mustRun(t, "status", "--no-color")
	assert.Contains(t, out, "Clock In:        ---")
	assert.Contains(t, out, "Shift Length:    9h 0m")

	moved, err := filepath.Glob(filepath.Join(home, "shiftr.db.corrupt-*"))
	require.NoError(t, err)
	assert.Len(t, moved, 1)

	mustRun(t, "in")
	assert.Contains(t, mustRun(t, "status", "--no-color"), "clocked in")
}

func TestCommands_ClearClockTimes(t *testing.T) {
	setupEnv(t, "json")

	mustRun(t, "set-in", "09:00")
	mustRun(t, "set-out", "12:00")
	assert.Contains(t, mustRun(t, "set-out", "--clear"), "Clock out cleared")
	assert.Contains(t, mustRun(t, "status", "--no-color"), "clocked in")

	assert.Contains(t, mustRun(t, "set-in", "--clear"), "Clock in cleared")
	out := mustRun(t, "status", "--no-color")
	assert.Contains(t, out, "Clock In:        ---")
	assert.Contains(t, out, "Gross Hours:     0h 0m")
}
