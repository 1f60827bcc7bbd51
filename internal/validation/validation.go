// Package validation checks command line inputs before any work starts.
package validation

import (
	"fmt"
	"os"

	"fjacquet/extracto/internal/models"
)

// IsValidInputFile checks that path exists and is a regular file.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidInputDir checks that path exists and is a directory.
func IsValidInputDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case models.OutputFormatXLSX, models.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'xlsx', 'csv'", format)
	}
}
