package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configures the global logger. Debug enables debug-level output.
func Init(debug bool) {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// L returns the configured logger, initializing it with defaults when
// Init was never called (tests, tools).
func L() *logrus.Logger {
	if log == nil {
		Init(false)
	}
	return log
}

// WithFields is a shorthand for L().WithFields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return L().WithFields(fields)
}
