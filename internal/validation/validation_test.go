package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/extracto/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidInputFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "extracto.pdf")
	require.NoError(t, os.WriteFile(testFile, []byte("%PDF-"), 0600))

	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{name: "existing file", path: testFile},
		{name: "missing file", path: filepath.Join(tmpDir, "missing.pdf"), errContains: "file does not exist"},
		{name: "directory", path: tmpDir, errContains: "is not a regular file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidInputFile(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestIsValidInputDir(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "a.pdf")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0600))

	assert.NoError(t, validation.IsValidInputDir(tmpDir))
	assert.ErrorContains(t, validation.IsValidInputDir(testFile), "is not a directory")
	assert.ErrorContains(t, validation.IsValidInputDir(filepath.Join(tmpDir, "nope")), "directory does not exist")
}

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{format: "xlsx"},
		{format: "csv"},
		{format: "json", wantErr: true},
		{format: "XLSX", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validation.IsValidOutputFormat(tt.format)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported output format")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
