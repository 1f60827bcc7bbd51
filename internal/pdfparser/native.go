package pdfparser

import (
	"fmt"
	"strings"

	"fjacquet/extracto/internal/config"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor reads the PDF text layer in-process with ledongthuc/pdf.
type NativeExtractor struct{}

// NewNativeExtractor creates a NativeExtractor.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// Name implements named.
func (e *NativeExtractor) Name() string {
	return config.BackendNative
}

// ExtractText returns the plain text of every page in order, each page
// followed by a newline.
func (e *NativeExtractor) ExtractText(pdfPath string) (text string, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF %s: %v", pdfPath, r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	totalPages := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", pageIndex, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
