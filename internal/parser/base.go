// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/extracto/internal/common"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
)

// BaseParser provides common functionality for all parser implementations.
// Parsers embed it to share the logger and the output writer:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser instance with the provided logger.
// If logger is nil, a default logger will be used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteRecords writes records to outputFile in the given format using the
// shared writers, so every parser produces the same sheet layout.
func (b *BaseParser) WriteRecords(records []models.TransactionRecord, outputFile, format string, delimiter rune) error {
	b.logger.Info("Writing records using common writer",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldCount, len(records)))

	return common.WriteRecords(records, outputFile, format, delimiter, b.logger)
}
