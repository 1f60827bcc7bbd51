package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements Logger on top of logrus.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrusAdapter builds a logger with the given level ("debug", "info",
// "warn", "error") and format ("json" or "text"). An unknown level falls
// back to info.
func NewLogrusAdapter(level, format string) Logger {
	return NewLogrusAdapterWithOutput(level, format, nil)
}

// NewLogrusAdapterWithOutput is NewLogrusAdapter writing to out. A nil out
// keeps the logrus default (stderr).
func NewLogrusAdapterWithOutput(level, format string, out io.Writer) Logger {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.SetFormatter(formatterFor(format))

	return NewLogrusAdapterFromLogger(logger)
}

// NewLogrusAdapterFromLogger wraps an existing logrus logger.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return &LogrusAdapter{
		logger: logger,
		entry:  logrus.NewEntry(logger),
	}
}

// SetAllLogLevels sets the level of the logrus standard logger. It runs
// before any command so that early messages honor LOG_LEVEL.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}

func formatterFor(format string) logrus.Formatter {
	if strings.ToLower(format) == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Error(msg)
}

func (l *LogrusAdapter) Fatal(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Fatal(msg)
}

func (l *LogrusAdapter) Fatalf(msg string, args ...interface{}) {
	l.entry.Fatalf(msg, args...)
}

func (l *LogrusAdapter) WithError(err error) Logger {
	return l.derive(l.entry.WithError(err))
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return l.derive(l.entry.WithField(key, value))
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return l.derive(l.entry.WithFields(convertFields(fields)))
}

func (l *LogrusAdapter) derive(entry *logrus.Entry) Logger {
	return &LogrusAdapter{logger: l.logger, entry: entry}
}

func convertFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
