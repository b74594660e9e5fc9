package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process wide logger. It is usable before Init and writes text
// at info level to stderr until then.
var Log = logrus.New()

// Options seed Init. WALDEN_LOG_LEVEL and WALDEN_LOG_FORMAT override the
// level and format when set.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Init configures Log and returns it. It should be called once from main.
func Init(opts Options) *logrus.Logger {
	level := opts.Level
	if env := os.Getenv("WALDEN_LOG_LEVEL"); env != "" {
		level = env
	}
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	format := opts.Format
	if env := os.Getenv("WALDEN_LOG_FORMAT"); env != "" {
		format = env
	}
	if strings.EqualFold(format, "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
	return Log
}

// Discard returns a logger that drops everything. Clients that own the
// terminal use it when no log file is configured.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
