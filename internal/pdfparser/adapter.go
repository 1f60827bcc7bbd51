// Package pdfparser turns Bancolombia PDF account statements into
// transaction records.
package pdfparser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/dateutils"
	"fjacquet/extracto/internal/fileutils"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
	"fjacquet/extracto/internal/parser"
	"fjacquet/extracto/internal/parsererror"
	"fjacquet/extracto/internal/scanner"
	"fjacquet/extracto/internal/textutils"
)

const parserName = "PDF"

// pdfMagic opens every PDF file.
var pdfMagic = []byte("%PDF-")

// Adapter implements parser.FullParser for PDF bank statements.
type Adapter struct {
	parser.BaseParser
	extractor PDFExtractor
	scanner   *scanner.Scanner
	cfg       *config.Config
}

// NewAdapter creates a new adapter for the pdfparser with dependency injection.
// A nil extractor selects the backend from cfg; a nil cfg uses the defaults.
func NewAdapter(logger logging.Logger, extractor PDFExtractor, cfg *config.Config) *Adapter {
	base := parser.NewBaseParser(logger)
	if cfg == nil {
		cfg = config.Default()
	}
	if extractor == nil {
		var err error
		extractor, err = NewExtractor(cfg.Extractor, base.GetLogger())
		if err != nil {
			base.GetLogger().WithError(err).Warn("Falling back to the auto extractor")
			extractor, _ = NewExtractor(config.ExtractorConfig{Backend: config.BackendAuto}, base.GetLogger())
		}
	}
	return &Adapter{
		BaseParser: base,
		extractor:  extractor,
		scanner:    scanner.New(base.GetLogger()),
		cfg:        cfg,
	}
}

// SetLogger replaces the logger of the adapter and its scanner.
func (a *Adapter) SetLogger(logger logging.Logger) {
	a.BaseParser.SetLogger(logger)
	a.scanner = scanner.New(a.GetLogger())
}

// Extractor returns the text source in use.
func (a *Adapter) Extractor() PDFExtractor {
	return a.extractor
}

// ExtractLines returns the normalized, non-empty lines of the document.
func (a *Adapter) ExtractLines(pdfPath string) ([]string, error) {
	a.GetLogger().Debug("Extracting text",
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldBackend, backendName(a.extractor)))

	text, err := a.extractor.ExtractText(pdfPath)
	if err != nil {
		return nil, &parsererror.DataExtractionError{
			FilePath: pdfPath,
			Backend:  backendName(a.extractor),
			Err:      err,
		}
	}

	lines := textutils.SplitLines(text)
	a.GetLogger().Debug("Text extracted",
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldLine, len(lines)))
	return lines, nil
}

// RecordsFromLines scans lines, fills in the dates and orders the records
// newest first. The second result lists the date strings that did not parse.
func (a *Adapter) RecordsFromLines(lines []string) ([]models.TransactionRecord, []string) {
	records := a.scanner.Scan(lines)
	records, unparsed := dateutils.NormalizeRecords(records, a.GetLogger())
	return models.SortNewestFirst(records), unparsed
}

// ParseFile reads the statement at pdfPath.
func (a *Adapter) ParseFile(pdfPath string) ([]models.TransactionRecord, error) {
	records, _, err := a.parseFile(pdfPath)
	return records, err
}

func (a *Adapter) parseFile(pdfPath string) ([]models.TransactionRecord, []string, error) {
	lines, err := a.ExtractLines(pdfPath)
	if err != nil {
		return nil, nil, err
	}
	records, unparsed := a.RecordsFromLines(lines)
	return records, unparsed, nil
}

// Parse reads data from the provided io.Reader and returns the statement's
// records. The extractors work on paths, so the content is spooled to a
// temporary file first.
func (a *Adapter) Parse(r io.Reader) ([]models.TransactionRecord, error) {
	tempFile, err := os.CreateTemp("", "extracto-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			a.GetLogger().WithError(err).Warn("Failed to remove temporary file",
				logging.F(logging.FieldFile, tempFile.Name()))
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to write to temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	return a.ParseFile(tempFile.Name())
}

// ValidateFormat checks if a file is a valid PDF file. A missing file is an
// error; any other file that does not start with the PDF header is reported
// as invalid without error.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	a.GetLogger().Debug("Validating PDF format", logging.F(logging.FieldFile, file))

	header, err := fileutils.ReadHeader(file, len(pdfMagic))
	if err != nil {
		return false, err
	}
	return bytes.Equal(header, pdfMagic), nil
}

// Convert runs the full pipeline from inputFile to outputFile in the
// configured output format.
func (a *Adapter) Convert(inputFile, outputFile string) (*parser.Result, error) {
	log := a.GetLogger().WithFields(
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldParser, parserName))

	if !fileutils.FileExists(inputFile) {
		return nil, &parsererror.ValidationError{FilePath: inputFile, Reason: "file does not exist"}
	}

	log.Info("Processing statement")
	records, unparsed, err := a.parseFile(inputFile)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, parsererror.ErrNoTransactions
	}

	if err := a.WriteRecords(records, outputFile, a.cfg.Output.Format, a.cfg.DelimiterRune()); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("Statement converted",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldCount, len(records)))

	return &parser.Result{
		Records:       records,
		OutputFile:    outputFile,
		UnparsedDates: unparsed,
	}, nil
}
