package pdfparser

import (
	"fmt"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/textutils"
)

// PDFExtractor defines the interface for extracting text from PDF files.
// This interface allows for dependency injection and makes the PDF parser testable
// by providing different implementations for production and testing.
type PDFExtractor interface {
	// ExtractText extracts text content from a PDF file at the given path.
	// Returns the extracted text as a string or an error if extraction fails.
	ExtractText(pdfPath string) (string, error)
}

// named is implemented by extractors that report which backend they are.
type named interface {
	Name() string
}

func backendName(e PDFExtractor) string {
	if n, ok := e.(named); ok {
		return n.Name()
	}
	return ""
}

// NewExtractor builds the extractor selected by cfg.Backend.
func NewExtractor(cfg config.ExtractorConfig, logger logging.Logger) (PDFExtractor, error) {
	switch cfg.Backend {
	case config.BackendNative:
		return NewNativeExtractor(), nil
	case config.BackendPdftotext:
		return NewPdftotextExtractor(cfg.PdftotextPath, cfg.Layout), nil
	case config.BackendAuto, "":
		return NewFallbackExtractor(
			NewNativeExtractor(),
			NewPdftotextExtractor(cfg.PdftotextPath, cfg.Layout),
			logger,
		), nil
	default:
		return nil, fmt.Errorf("unknown extractor backend: %s", cfg.Backend)
	}
}

// FallbackExtractor tries Primary and hands the document to Secondary when
// Primary fails or produces no usable lines.
type FallbackExtractor struct {
	Primary   PDFExtractor
	Secondary PDFExtractor
	logger    logging.Logger
}

// NewFallbackExtractor creates a FallbackExtractor.
func NewFallbackExtractor(primary, secondary PDFExtractor, logger logging.Logger) *FallbackExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &FallbackExtractor{Primary: primary, Secondary: secondary, logger: logger}
}

// Name implements named.
func (e *FallbackExtractor) Name() string {
	return config.BackendAuto
}

// ExtractText implements PDFExtractor.
func (e *FallbackExtractor) ExtractText(pdfPath string) (string, error) {
	text, err := e.Primary.ExtractText(pdfPath)
	if err == nil && len(textutils.SplitLines(text)) > 0 {
		return text, nil
	}

	log := e.logger.WithFields(
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldBackend, backendName(e.Secondary)))
	if err != nil {
		log.WithError(err).Warn("Primary text extraction failed, trying fallback")
	} else {
		log.Info("Primary text extraction returned no text, trying fallback")
	}

	fallbackText, fallbackErr := e.Secondary.ExtractText(pdfPath)
	if fallbackErr != nil {
		if err != nil {
			return "", fmt.Errorf("%s: %v; %s: %w", backendName(e.Primary), err, backendName(e.Secondary), fallbackErr)
		}
		return "", fallbackErr
	}
	return fallbackText, nil
}

// MockPDFExtractor implements PDFExtractor for testing purposes.
// It returns predefined mock data instead of actually extracting from PDF files.
type MockPDFExtractor struct {
	MockText string
	MockErr  error
	Calls    []string
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(mockText string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractText returns the predefined mock text or error.
func (e *MockPDFExtractor) ExtractText(pdfPath string) (string, error) {
	e.Calls = append(e.Calls, pdfPath)
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}

// Name implements named.
func (e *MockPDFExtractor) Name() string {
	return "mock"
}
