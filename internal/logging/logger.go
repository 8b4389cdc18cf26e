// Package logging hides the logging backend behind a small structured interface
// so that parsers, stores and the resolver can be tested with a capturing mock.
package logging

// Logger is the structured logger used across the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger carrying err.
	WithError(err error) Logger
	// WithField returns a derived logger carrying one extra field.
	WithField(key string, value interface{}) Logger
	// WithFields returns a derived logger carrying the given fields.
	WithFields(fields ...Field) Logger

	// Fatal logs and exits the program.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
