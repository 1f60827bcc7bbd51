// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/extracto/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadHeader returns up to n leading bytes of a file.
func ReadHeader(filePath string, n int) ([]byte, error) {
	f, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return buf[:read], nil
}

// WriteLines writes lines to filePath, one per line, creating parent
// directories as needed.
func WriteLines(filePath string, lines []string) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(filePath, []byte(data), models.PermissionReportFile); err != nil { // #nosec G306 -- plain text diagnostics
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// DefaultOutputPath names the output for input: the input's base name
// without extension, plus suffix and the format extension, in the working
// directory.
func DefaultOutputPath(input, suffix, format string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + suffix + "." + format
}

// OutputPathInDir is DefaultOutputPath placed under dir.
func OutputPathInDir(dir, input, suffix, format string) string {
	return filepath.Join(dir, DefaultOutputPath(input, suffix, format))
}

// ListFilesWithExtension returns the files directly under dirPath whose
// extension matches, ignoring case, sorted by name.
func ListFilesWithExtension(dirPath, extension string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), extension) {
			files = append(files, filepath.Join(dirPath, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
