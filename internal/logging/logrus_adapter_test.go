package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(l), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "upper case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "upper case format", level: "error", format: "JSON", expectLevel: logrus.ErrorLevel, expectJSON: true},
		{name: "invalid level falls back to info", level: "chatty", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogrusAdapterWithOutput(tt.level, tt.format, &buf)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)

			assert.Equal(t, tt.expectLevel, adapter.logger.Level)
			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(Logger)
		want string
	}{
		{name: "debug", log: func(l Logger) { l.Debug("scan step", F(FieldLine, 3)) }, want: "scan step"},
		{name: "info", log: func(l Logger) { l.Info("wrote file", F(FieldOutputFile, "a.xlsx")) }, want: "a.xlsx"},
		{name: "warn", log: func(l Logger) { l.Warn("dropped", F(FieldRawValue, "$1,2,3")) }, want: "raw_value"},
		{name: "error", log: func(l Logger) { l.Error("boom") }, want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedAdapter(logrus.DebugLevel)
			tt.log(logger)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.WarnLevel)
	logger.Info("hidden")
	logger.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogrusAdapter_ChainedContext(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldInputFile, "extracto.pdf").
		WithFields(F(FieldBackend, "native"), F(FieldCount, 12)).
		WithError(errors.New("no pages")).
		Error("extraction failed")

	out := buf.String()
	for _, want := range []string{"extraction failed", "extracto.pdf", "native", "count=12", "no pages"} {
		assert.Contains(t, out, want)
	}
}

func TestLogrusAdapter_ChildDoesNotLeakFields(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)
	_ = logger.WithField("kind", "Crédito")
	logger.Info("plain")

	assert.NotContains(t, buf.String(), "Crédito")
}

func TestConvertFields(t *testing.T) {
	got := convertFields([]Field{F("a", "x"), F("b", 2), F("a", "y")})
	assert.Len(t, got, 2)
	assert.Equal(t, "y", got["a"])
	assert.Equal(t, 2, got["b"])
	assert.Empty(t, convertFields(nil))
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
