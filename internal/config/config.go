package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/balkashynov/shiftr/internal/models"
	"github.com/balkashynov/shiftr/internal/storage"
)

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
)

type Config struct {
	Home              string
	Store             string
	DefaultShiftHours float64
	LunchMinutes      int
	SaveDebounce      time.Duration
	ExportDir         string
	LogLevel          logrus.Level
}

// DatabasePath is the SQLite file inside Home
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Home, "shiftr.db")
}

// StatePath is the JSON state file inside Home
func (c *Config) StatePath() string {
	return filepath.Join(c.Home, "state.json")
}

// LogPath is where logs go while the dashboard owns the terminal
func (c *Config) LogPath() string {
	return filepath.Join(c.Home, "shiftr.log")
}

// Load reads configuration from the environment. A .env file in SHIFTR_HOME
// and then one in the working directory are applied first if present;
// variables already set in the environment win.
func Load() (*Config, error) {
	home, err := defaultHome()
	if err != nil {
		return nil, err
	}
	home = getEnv("SHIFTR_HOME", home)

	for _, f := range []string{filepath.Join(home, ".env"), ".env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("error loading env file %s: %w", f, err)
		}
	}
	// .env may itself move the home directory
	home = getEnv("SHIFTR_HOME", home)

	cfg := &Config{
		Home:              home,
		Store:             strings.ToLower(getEnv("SHIFTR_STORE", StoreSQLite)),
		DefaultShiftHours: getEnvAsFloat("SHIFTR_DEFAULT_SHIFT_HOURS", models.DefaultShiftLengthHours),
		LunchMinutes:      getEnvAsInt("SHIFTR_LUNCH_MINUTES", 0),
		SaveDebounce:      getEnvAsDuration("SHIFTR_SAVE_DEBOUNCE", storage.DefaultDebounce),
		ExportDir:         getEnv("SHIFTR_EXPORT_DIR", "."),
		LogLevel:          logrus.WarnLevel,
	}

	if lvl := getEnv("SHIFTR_LOG_LEVEL", ""); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid SHIFTR_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreSQLite, StoreJSON:
	default:
		return fmt.Errorf("invalid SHIFTR_STORE %q: use %s or %s", c.Store, StoreSQLite, StoreJSON)
	}
	if c.DefaultShiftHours <= 0 {
		return fmt.Errorf("SHIFTR_DEFAULT_SHIFT_HOURS must be positive, got %v", c.DefaultShiftHours)
	}
	if c.LunchMinutes < 0 {
		return fmt.Errorf("SHIFTR_LUNCH_MINUTES must not be negative, got %d", c.LunchMinutes)
	}
	return nil
}

func defaultHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".shiftr"), nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}

	return defaultVal
}
