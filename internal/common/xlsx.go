package common

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"

	"github.com/xuri/excelize/v2"
)

// Sheet layout.
const (
	headerFill      = "366092"
	headerFontColor = "FFFFFF"
	dateNumFmt      = "dd/mm/yyyy"
	amountNumFmt    = "$#,##0.00"
)

type column struct {
	name   string
	letter string
	width  float64
}

var sheetColumns = []column{
	{name: models.ColumnDate, letter: "A", width: 12},
	{name: models.ColumnKind, letter: "B", width: 18},
	{name: models.ColumnDescription, letter: "C", width: 80},
	{name: models.ColumnAmount, letter: "D", width: 15},
}

// WriteRecordsToXLSX writes records to a single "Movimientos" sheet, one row
// per record after a styled header. Records without a date get a blank
// Fecha cell.
func WriteRecordsToXLSX(records []models.TransactionRecord, xlsxFile string, logger logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to XLSX")
	}

	logger.Info("Writing records to XLSX file",
		logging.F(logging.FieldFile, xlsxFile),
		logging.F(logging.FieldCount, len(records)))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet := models.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	for i, col := range sheetColumns {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), col.name); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
		if err := f.SetColWidth(sheet, col.letter, col.letter, col.width); err != nil {
			return fmt.Errorf("error setting column width: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", styles.header); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for i, r := range records {
		row := i + 2
		if r.HasDate() {
			if err := f.SetCellValue(sheet, cellName(1, row), r.Date); err != nil {
				return fmt.Errorf("error writing row %d: %w", row, err)
			}
		}
		values := []interface{}{r.Kind.String(), r.Description, r.Amount.InexactFloat64()}
		for c, v := range values {
			if err := f.SetCellValue(sheet, cellName(c+2, row), v); err != nil {
				return fmt.Errorf("error writing row %d: %w", row, err)
			}
		}
	}

	if last := len(records) + 1; last > 1 {
		if err := f.SetCellStyle(sheet, "A2", cellName(1, last), styles.date); err != nil {
			return fmt.Errorf("error styling dates: %w", err)
		}
		if err := f.SetCellStyle(sheet, "D2", cellName(4, last), styles.amount); err != nil {
			return fmt.Errorf("error styling amounts: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(xlsxFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := f.SaveAs(xlsxFile); err != nil {
		return fmt.Errorf("error saving XLSX file: %w", err)
	}

	logger.Info("Saved XLSX file", logging.F(logging.FieldOutputFile, xlsxFile))
	return nil
}

type sheetStyles struct {
	header int
	date   int
	amount int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Border: border,
	})
	if err != nil {
		return s, fmt.Errorf("error creating header style: %w", err)
	}

	dateFmt := dateNumFmt
	if s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err != nil {
		return s, fmt.Errorf("error creating date style: %w", err)
	}

	amountFmt := amountNumFmt
	if s.amount, err = f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt}); err != nil {
		return s, fmt.Errorf("error creating amount style: %w", err)
	}
	return s, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
