package parser

import (
	"io"

	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
)

// Parser turns a document into transaction records.
type Parser interface {
	// Parse reads a whole document from r and returns its records, dated
	// where possible and ordered newest first.
	Parse(r io.Reader) ([]models.TransactionRecord, error)
}

// Validator checks whether a file is something a parser can read.
type Validator interface {
	ValidateFormat(filePath string) (bool, error)
}

// Converter runs the whole pipeline from an input document to an output file.
type Converter interface {
	// Convert returns a nil Result together with a typed error whenever the
	// run stops early.
	Convert(inputFile, outputFile string) (*Result, error)
}

// LoggerConfigurable lets the container swap a parser's logger.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is everything a command needs from a parser.
type FullParser interface {
	Parser
	Validator
	Converter
	LoggerConfigurable
}

// Result describes a finished conversion.
type Result struct {
	Records       []models.TransactionRecord
	OutputFile    string
	UnparsedDates []string
}
