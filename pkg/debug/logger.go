// Package debug provides leveled trace logging for interaction and
// meter debugging. The widget packages stay silent on hot paths; demo
// hosts and the dsp meter sources log lifecycle events here.
package debug

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Level aliases the logrus severity so callers need not import logrus
// for plain configuration.
type Level = logrus.Level

// Levels accepted by SetLevel.
const (
	LevelTrace = logrus.TraceLevel
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelWarn  = logrus.WarnLevel
	LevelError = logrus.ErrorLevel
)

var logger = newDefault()

// newDefault builds the package logger: stderr, warnings and up, so a
// host embedding the widgets sees nothing unless it opts in.
func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Logger returns the underlying logrus logger for hosts that want to
// install hooks or a formatter.
func Logger() *logrus.Logger {
	return logger
}

// SetOutput redirects all debug logging.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel sets the minimum severity that is written.
func SetLevel(level Level) {
	logger.SetLevel(level)
}

// Enabled reports whether the given severity would be written.
func Enabled(level Level) bool {
	return logger.IsLevelEnabled(level)
}

// WithField returns an entry carrying one structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields returns an entry carrying several structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Tracef logs at trace level.
func Tracef(format string, args ...interface{}) {
	logger.Tracef(format, args...)
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs at warning level.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
