package pdfparser

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"fjacquet/extracto/internal/config"
)

// PdftotextExtractor shells out to poppler's pdftotext.
type PdftotextExtractor struct {
	Path   string
	Layout bool
}

// NewPdftotextExtractor creates a PdftotextExtractor. An empty path means
// "pdftotext" on PATH.
func NewPdftotextExtractor(path string, layout bool) *PdftotextExtractor {
	if path == "" {
		path = "pdftotext"
	}
	return &PdftotextExtractor{Path: path, Layout: layout}
}

// Name implements named.
func (e *PdftotextExtractor) Name() string {
	return config.BackendPdftotext
}

// Args returns the command line arguments used for pdfPath. The text goes
// to standard output.
func (e *PdftotextExtractor) Args(pdfPath string) []string {
	args := []string{"-enc", "UTF-8"}
	if e.Layout {
		args = append(args, "-layout")
	}
	return append(args, pdfPath, "-")
}

// ExtractText runs pdftotext on pdfPath.
func (e *PdftotextExtractor) ExtractText(pdfPath string) (string, error) {
	bin, err := exec.LookPath(e.Path)
	if err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, e.Args(pdfPath)...) // #nosec G204 -- binary path comes from configuration
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("error running pdftotext: %w: %s", err, msg)
		}
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}
	return stdout.String(), nil
}
