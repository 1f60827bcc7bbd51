// Package parsererror holds the error types returned while turning a
// statement into records.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNoTransactions is returned when a document was read successfully but
// the scanner found nothing to emit.
var ErrNoTransactions = errors.New("no transactions found in statement")

// ParseError reports a single value that could not be converted.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v", e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports an input that is rejected before any work starts,
// such as a missing file.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError reports a file that is not the expected document type.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError reports that the text source could not produce text
// for a document.
type DataExtractionError struct {
	FilePath string
	Backend  string
	Err      error
}

func (e *DataExtractionError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("text extraction failed for '%s' (%s): %v", e.FilePath, e.Backend, e.Err)
	}
	return fmt.Sprintf("text extraction failed for '%s': %v", e.FilePath, e.Err)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
