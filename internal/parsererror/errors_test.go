package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := errors.New("can't convert ,5, to decimal")
	err := &ParseError{Parser: "scanner", Field: "amount", Value: "$,5,", Err: cause}

	assert.Equal(t, "scanner: failed to parse amount='$,5,': can't convert ,5, to decimal", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "extracto.pdf", Reason: "file does not exist"}
	assert.Equal(t, "validation failed for extracto.pdf: file does not exist", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name:     "without snippet",
			err:      &InvalidFormatError{FilePath: "a.txt", ExpectedFormat: "PDF", Msg: "missing header"},
			expected: "invalid format in file 'a.txt': missing header. Expected: PDF",
		},
		{
			name:     "with snippet",
			err:      &InvalidFormatError{FilePath: "a.txt", ExpectedFormat: "PDF", Msg: "missing header", ActualContentSnippet: "hello"},
			expected: "invalid format in file 'a.txt': missing header. Expected: PDF. Content snippet: 'hello'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDataExtractionError(t *testing.T) {
	cause := errors.New("malformed xref")

	withBackend := &DataExtractionError{FilePath: "s.pdf", Backend: "native", Err: cause}
	assert.Equal(t, "text extraction failed for 's.pdf' (native): malformed xref", withBackend.Error())

	plain := &DataExtractionError{FilePath: "s.pdf", Err: cause}
	assert.Equal(t, "text extraction failed for 's.pdf': malformed xref", plain.Error())

	wrapped := fmt.Errorf("convert: %w", withBackend)
	var target *DataExtractionError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "native", target.Backend)
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrNoTransactions(t *testing.T) {
	wrapped := fmt.Errorf("statement.pdf: %w", ErrNoTransactions)
	assert.ErrorIs(t, wrapped, ErrNoTransactions)
}
