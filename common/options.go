package common

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogOption selects the logger an engine component reports to. Without a
// Logger, a fresh one is created at Level.
type LogOption struct {
	Logger *logrus.Logger
	Level  logrus.Level
}

// StandardLogOption routes component logs to the process logger configured
// by the command line flags.
func StandardLogOption() LogOption {
	return LogOption{Logger: logrus.StandardLogger()}
}

// DiscardLogger returns a logger that drops every entry.
func DiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

// NewLogger resolves the last of opts into a logger. Components are silent
// unless given an option.
func NewLogger(opts ...LogOption) *logrus.Logger {
	if len(opts) == 0 {
		return DiscardLogger()
	}

	opt := opts[len(opts)-1]
	if opt.Logger != nil {
		return opt.Logger
	}

	logger := logrus.New()
	logger.SetLevel(opt.Level)
	return logger
}
