// Package log provides the logging interface used throughout
// the emulator, backed by logrus.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging interface consumed by the emulator's
// components. *logrus.Logger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// FieldLogger is implemented by loggers that can attach
// structured fields to an entry.
type FieldLogger interface {
	Logger
	WithFields(fields logrus.Fields) *logrus.Entry
}

// New returns a Logger writing plain text entries at the
// info level.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing plain text entries
// at the given level.
func NewWithLevel(level logrus.Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// Fields logs format at the error level, attaching fields
// when the logger supports them.
func Fields(l Logger, fields logrus.Fields, format string, args ...interface{}) {
	if fl, ok := l.(FieldLogger); ok {
		fl.WithFields(fields).Errorf(format, args...)
		return
	}
	l.Errorf(format, args...)
}
