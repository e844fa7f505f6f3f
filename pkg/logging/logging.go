// Package logging configures the process logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger on stderr at level. Unknown levels fall back to
// warn so a typo never silences errors.
func New(level string) *logrus.Logger {
	return NewWithOutput(os.Stderr, level)
}

// NewWithOutput is New with an explicit writer.
func NewWithOutput(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}
