package aoc

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv names the environment variable holding the log level.
const LogLevelEnv = "AOC_LOG_LEVEL"

// Log is the logger shared by the solvers. It writes to stderr so that
// stdout carries only the answers.
var Log = newLogger(os.Getenv(LogLevelEnv))

func newLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if level == "" {
		return l
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.WithError(err).Warnf("ignoring %s", LogLevelEnv)
		return l
	}
	l.SetLevel(lvl)
	return l
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) {
	Log.Debugf(format, args...)
}
