// Package logging decouples the rest of extracto from the logging backend.
// Components receive a Logger through their constructors and never reach
// for a global.
package logging

// Logger is the structured logger used across the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a child logger carrying err.
	WithError(err error) Logger

	// WithField returns a child logger carrying one extra field.
	WithField(key string, value interface{}) Logger

	// WithFields returns a child logger carrying the given fields.
	WithFields(fields ...Field) Logger

	// Fatal logs and terminates the process.
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted message and terminates the process.
	Fatalf(msg string, args ...interface{})
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
