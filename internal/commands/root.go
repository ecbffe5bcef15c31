package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/balkashynov/shiftr/internal/clock"
	"github.com/balkashynov/shiftr/internal/config"
	"github.com/balkashynov/shiftr/internal/db"
	"github.com/balkashynov/shiftr/internal/service"
	"github.com/balkashynov/shiftr/internal/storage"
	"github.com/balkashynov/shiftr/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// now is swapped out in tests
var now clock.Clock = clock.System{}

var rootCmd = &cobra.Command{
	Use:   "shiftr",
	Short: "A terminal work-shift timer",
	Long: `shiftr tracks a single work shift from the terminal: clock in and out,
record breaks, and see effective hours, remaining time, overtime and when
the shift is expected to end.

Run without arguments to open the live dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// session is everything a command needs for one invocation
type session struct {
	cfg     *config.Config
	logger  *logrus.Logger
	tracker *service.Tracker

	db      *gorm.DB
	logFile *os.File
}

func (s *session) close() {
	s.tracker.Close()
	if s.db != nil {
		if err := db.Close(s.db); err != nil {
			s.logger.WithError(err).Warn("Failed to close database")
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// openSession loads configuration, opens the configured store and builds the
// tracker. Logs go to logOut unless toFile is set.
func openSession(logOut io.Writer, toFile bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	if toFile {
		f, err := cfg.OpenLogFile()
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		logOut = f
	}
	s.logger = cfg.NewLogger(logOut)

	var store storage.Store
	switch cfg.Store {
	case config.StoreJSON:
		store = storage.NewJSONStore(cfg.StatePath())
	default:
		gdb, err := db.OpenOrRecover(cfg.DatabasePath(), s.logger)
		if err != nil {
			if s.logFile != nil {
				s.logFile.Close()
			}
			return nil, err
		}
		s.db = gdb
		store = db.NewStateStore(gdb)
	}

	s.logger.WithFields(logrus.Fields{
		"home":  cfg.Home,
		"store": cfg.Store,
	}).Debug("Opening session")

	s.tracker = service.New(store, now, service.Options{
		DefaultShiftHours: cfg.DefaultShiftHours,
		Policy:            tracker.Policy{FixedLunchMinutes: tracker.Minutes(cfg.LunchMinutes)},
		SaveDebounce:      cfg.SaveDebounce,
	}, s.logger)

	return s, nil
}

// withTracker wraps a command so it runs against a freshly loaded tracker
// that is flushed and closed afterwards.
func withTracker(fn func(*cobra.Command, []string, *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.ErrOrStderr(), false)
		if err != nil {
			return err
		}
		defer s.close()
		return fn(cmd, args, s)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shiftr %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(setInCmd)
	rootCmd.AddCommand(setOutCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
