// Package logger provides the project-wide logrus logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const projectName = "leddy"

var projectLogger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// GetProjectLogger returns the logger shared by all leddy packages.
func GetProjectLogger() *logrus.Entry {
	return projectLogger.WithField("name", projectName)
}

// SetLevel parses a logrus level name ("debug", "info", ...) and applies it.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	projectLogger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, e.g. to silence logs in tests.
func SetOutput(out io.Writer) {
	projectLogger.SetOutput(out)
}
