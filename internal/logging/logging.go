// Package logging builds the structured logger used by the function.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stdout at the given level.
// Timestamps are left to the platform, which stamps every line.
func New(level string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stdout, level)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	formatter := logrus.JSONFormatter{}
	formatter.DisableTimestamp = true

	logger := logrus.New()
	logger.Out = w
	logger.Formatter = &formatter
	logger.Level = lvl
	return logger, nil
}
