// Package common holds the writers that turn records into output files.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/extracto/internal/currencyutils"
	"fjacquet/extracto/internal/dateutils"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"

	"github.com/gocarina/gocsv"
)

// csvRow is the CSV shape of a record. Headers match the spreadsheet sink.
type csvRow struct {
	Date        string `csv:"Fecha"`
	Kind        string `csv:"Tipo de transacción"`
	Description string `csv:"Descripción"`
	Amount      string `csv:"Valor"`
}

func toCSVRow(r models.TransactionRecord) csvRow {
	row := csvRow{
		Kind:        r.Kind.String(),
		Description: r.Description,
		Amount:      r.Amount.StringFixed(currencyutils.MinorUnits),
	}
	if r.HasDate() {
		row.Date = dateutils.FormatDMY(r.Date)
	}
	return row
}

// WriteRecordsToCSV writes records to csvFile with the given delimiter.
// Undated records get an empty Fecha column.
func WriteRecordsToCSV(records []models.TransactionRecord, csvFile string, delimiter rune, logger logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	logger.Info("Writing records to CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldDelimiter, string(delimiter)))

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided output paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]csvRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, toCSVRow(r))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// ReadCSVFile reads a delimited file into a slice of TRow using gocsv.
func ReadCSVFile[TRow any](filePath string, delimiter rune, logger logging.Logger) ([]TRow, error) {
	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter

	var rows []TRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Debug("Read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}
