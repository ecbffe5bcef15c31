package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger writing to out
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

// OpenLogFile opens the log file used while the terminal is taken over by
// the dashboard.
func (c *Config) OpenLogFile() (*os.File, error) {
	if err := os.MkdirAll(c.Home, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(c.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
