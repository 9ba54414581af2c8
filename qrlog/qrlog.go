// Package qrlog wires sirupsen/logrus into the simulator with a
// TTY-aware formatter choice, following the logging setup idiom of
// inference-sim's cmd package (logrus.ParseLevel + logrus.SetLevel),
// generalized into a reusable constructor instead of package-global CLI
// flags since this is a library, not a command.
package qrlog

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// New returns a fresh *logrus.Logger writing to stderr, using a colored
// TextFormatter when stderr is a terminal and a plain JSONFormatter
// otherwise — machine-consumed logs (redirected to a file, piped to a
// collector) get structured output, interactive runs get readable output.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}

// ParseLevel sets lvl (e.g. "trace", "debug", "info", "warn", "error") on
// l, returning an error for an unrecognized level instead of the
// logrus.Fatalf the CLI-bound teacher uses — a library must never call
// os.Exit on a caller's behalf.
func ParseLevel(l *logrus.Logger, lvl string) error {
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	return nil
}
