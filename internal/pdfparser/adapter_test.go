package pdfparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
	"fjacquet/extracto/internal/parser"
	"fjacquet/extracto/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const statementText = "BANCOLOMBIA\r\n" +
	"Extracto de cuenta de ahorros\n" +
	"10 ene 2024 Crédito Pago recibido $1.000.000,00\n" +
	"\f" +
	"15 ene 2024 Débito Compra en tienda $120.500,00\n"

func writeFakePDF(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "extracto.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%mock"), 0600))
	return path
}

func newTestAdapter(text string, err error, cfg *config.Config) (*Adapter, *MockPDFExtractor, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	mock := NewMockPDFExtractor(text, err)
	return NewAdapter(logger, mock, cfg), mock, logger
}

func TestAdapter_ImplementsFullParser(t *testing.T) {
	var _ parser.FullParser = &Adapter{}
}

func TestNewAdapter_Defaults(t *testing.T) {
	a := NewAdapter(nil, nil, nil)
	require.NotNil(t, a.GetLogger())
	assert.Equal(t, config.BackendAuto, backendName(a.Extractor()))

	cfg := config.Default()
	cfg.Extractor.Backend = config.BackendNative
	a = NewAdapter(logging.NewMockLogger(), nil, cfg)
	assert.Equal(t, config.BackendNative, backendName(a.Extractor()))
}

func TestAdapter_Convert_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeFakePDF(t, dir)
	output := filepath.Join(dir, "out", "extracto_Movimientos.xlsx")

	a, mock, _ := newTestAdapter(statementText, nil, nil)
	result, err := a.Convert(input, output)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{input}, mock.Calls)

	require.Len(t, result.Records, 2)
	assert.Empty(t, result.UnparsedDates)
	assert.Equal(t, output, result.OutputFile)

	first, second := result.Records[0], result.Records[1]
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, models.KindDebit, first.Kind)
	assert.Equal(t, "Compra en tienda", first.Description)
	assert.True(t, decimal.NewFromInt(120500).Equal(first.Amount))

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, models.KindCredit, second.Kind)
	assert.Equal(t, "Pago recibido", second.Description)
	assert.True(t, decimal.NewFromInt(1000000).Equal(second.Amount))

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(models.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Compra en tienda", rows[1][2])
	assert.Equal(t, "Pago recibido", rows[2][2])
}

func TestAdapter_Convert_CSV(t *testing.T) {
	dir := t.TempDir()
	input := writeFakePDF(t, dir)
	output := filepath.Join(dir, "out.csv")

	cfg := config.Default()
	cfg.Output.Format = models.OutputFormatCSV
	cfg.CSV.Delimiter = ";"

	a, _, _ := newTestAdapter(statementText, nil, cfg)
	_, err := a.Convert(input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "15/01/2024;Débito;Compra en tienda;120500.00", lines[1])
}

func TestAdapter_Convert_UnparsedDatesKept(t *testing.T) {
	dir := t.TempDir()
	input := writeFakePDF(t, dir)

	text := "31 feb 2024 Débito Cargo raro $5,00\n" +
		"2 mar 2024 Crédito Abono $10,00\n"
	a, _, logger := newTestAdapter(text, nil, nil)

	result, err := a.Convert(input, filepath.Join(dir, "out.xlsx"))
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Equal(t, []string{"31 feb 2024"}, result.UnparsedDates)
	assert.Equal(t, "Abono", result.Records[0].Description)
	assert.False(t, result.Records[1].HasDate())
	assert.Len(t, logger.EntriesByLevel("WARN"), 1)
}

func TestAdapter_Convert_Failures(t *testing.T) {
	dir := t.TempDir()
	input := writeFakePDF(t, dir)

	t.Run("missing input", func(t *testing.T) {
		a, mock, _ := newTestAdapter(statementText, nil, nil)
		output := filepath.Join(dir, "never.xlsx")

		result, err := a.Convert(filepath.Join(dir, "missing.pdf"), output)
		assert.Nil(t, result)
		var vErr *parsererror.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Empty(t, mock.Calls)
		assert.NoFileExists(t, output)
	})

	t.Run("extraction failure", func(t *testing.T) {
		cause := errors.New("broken xref")
		a, _, _ := newTestAdapter("", cause, nil)

		result, err := a.Convert(input, filepath.Join(dir, "x.xlsx"))
		assert.Nil(t, result)
		var dErr *parsererror.DataExtractionError
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, "mock", dErr.Backend)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("no transactions", func(t *testing.T) {
		a, _, _ := newTestAdapter("Saldo anterior $1.000,00\nSin movimientos\n", nil, nil)
		output := filepath.Join(dir, "empty.xlsx")

		result, err := a.Convert(input, output)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, parsererror.ErrNoTransactions)
		assert.NoFileExists(t, output)
	})

	t.Run("write failure", func(t *testing.T) {
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

		a, _, _ := newTestAdapter(statementText, nil, nil)
		result, err := a.Convert(input, filepath.Join(blocker, "out.xlsx"))
		assert.Nil(t, result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write output")
	})
}

func TestAdapter_ExtractLines(t *testing.T) {
	a, _, _ := newTestAdapter("  uno  \n\n dos\r\ntres\f", nil, nil)
	lines, err := a.ExtractLines("a.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"uno", "dos", "tres"}, lines)
}

func TestAdapter_Parse(t *testing.T) {
	a, mock, _ := newTestAdapter(statementText, nil, nil)

	records, err := a.Parse(strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "15 ene 2024", records[0].DateOriginal)

	require.Len(t, mock.Calls, 1)
	assert.NoFileExists(t, mock.Calls[0], "temporary file is removed")
}

func TestAdapter_ValidateFormat(t *testing.T) {
	dir := t.TempDir()
	valid := writeFakePDF(t, dir)
	invalid := filepath.Join(dir, "invalid.txt")
	require.NoError(t, os.WriteFile(invalid, []byte("This is not a PDF file"), 0600))

	a, _, _ := newTestAdapter("", nil, nil)

	ok, err := a.ValidateFormat(valid)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.ValidateFormat(invalid)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.ValidateFormat(filepath.Join(dir, "nonexistent.pdf"))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestAdapter_SetLogger(t *testing.T) {
	a, _, first := newTestAdapter(statementText, nil, nil)
	second := logging.NewMockLogger()
	a.SetLogger(second)

	a.RecordsFromLines([]string{"1 ene 2024 Débito x $1,00"})
	assert.Empty(t, first.Entries())
	assert.True(t, second.HasEntry("INFO", "Scan finished"))
}
