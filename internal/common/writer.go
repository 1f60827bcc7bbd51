package common

import (
	"fmt"

	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
)

// WriteRecords writes records in the given output format.
func WriteRecords(records []models.TransactionRecord, path, format string, delimiter rune, logger logging.Logger) error {
	switch format {
	case models.OutputFormatXLSX, "":
		return WriteRecordsToXLSX(records, path, logger)
	case models.OutputFormatCSV:
		return WriteRecordsToCSV(records, path, delimiter, logger)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
