// Package report prints the human-readable outcome of a conversion.
package report

import (
	"fmt"
	"io"

	"fjacquet/extracto/internal/currencyutils"
	"fjacquet/extracto/internal/dateutils"
	"fjacquet/extracto/internal/models"
	"fjacquet/extracto/internal/parser"

	"github.com/fatih/color"
)

// InvalidDateLabel replaces the date of a record whose date did not parse.
const InvalidDateLabel = "Fecha inválida"

// Printer writes conversion summaries to Out.
type Printer struct {
	Out         io.Writer
	PreviewRows int

	title   *color.Color
	ok      *color.Color
	warn    *color.Color
	fail    *color.Color
	date    *color.Color
	credit  *color.Color
	debit   *color.Color
	neutral *color.Color
}

// NewPrinter creates a Printer. With useColor false the output is plain
// text; otherwise color follows the terminal detection of fatih/color.
func NewPrinter(out io.Writer, previewRows int, useColor bool) *Printer {
	p := &Printer{
		Out:         out,
		PreviewRows: previewRows,
		title:       color.New(color.Bold),
		ok:          color.New(color.FgGreen),
		warn:        color.New(color.FgYellow),
		fail:        color.New(color.FgRed, color.Bold),
		date:        color.New(color.FgCyan),
		credit:      color.New(color.FgGreen),
		debit:       color.New(color.FgRed),
		neutral:     color.New(color.Reset),
	}
	if !useColor {
		for _, c := range []*color.Color{p.title, p.ok, p.warn, p.fail, p.date, p.credit, p.debit, p.neutral} {
			c.DisableColor()
		}
	}
	return p
}

// Processing announces the file about to be converted.
func (p *Printer) Processing(inputFile string) {
	p.neutral.Fprintf(p.Out, "Procesando archivo: %s\n", inputFile)
}

// Saved confirms the output file was written.
func (p *Printer) Saved(outputFile string) {
	p.ok.Fprintf(p.Out, "✓ Archivo guardado: %s\n", outputFile)
}

// Failure prints a one-line error.
func (p *Printer) Failure(format string, args ...interface{}) {
	p.fail.Fprintf(p.Out, "❌ "+format+"\n", args...)
}

// Summary prints the record count, output file, date range and a preview
// of the first records.
func (p *Printer) Summary(result *parser.Result) {
	if result == nil {
		return
	}

	p.title.Fprintln(p.Out, "\n📊 Resumen:")
	fmt.Fprintf(p.Out, "   • Transacciones procesadas: %d\n", len(result.Records))
	fmt.Fprintf(p.Out, "   • Archivo de salida: %s\n", result.OutputFile)

	if first, last, ok := models.DateRange(result.Records); ok {
		fmt.Fprintf(p.Out, "   • Rango de fechas: %s - %s\n", dateutils.FormatDMY(first), dateutils.FormatDMY(last))
	} else {
		p.warn.Fprintln(p.Out, "   • Advertencia: No se pudieron procesar las fechas correctamente")
	}

	if len(result.UnparsedDates) > 0 {
		p.warn.Fprintf(p.Out, "   • Fechas sin convertir: %d\n", len(result.UnparsedDates))
	}

	n := min(p.PreviewRows, len(result.Records))
	if n <= 0 {
		return
	}
	p.title.Fprintf(p.Out, "\n🔍 Primeras %d transacciones:\n", n)
	for _, r := range result.Records[:n] {
		p.previewRow(r)
	}
}

func (p *Printer) previewRow(r models.TransactionRecord) {
	dateStr := InvalidDateLabel
	if r.HasDate() {
		dateStr = dateutils.FormatDMY(r.Date)
	}
	kind := p.debit
	if r.Kind == models.KindCredit {
		kind = p.credit
	}

	fmt.Fprint(p.Out, "   ")
	p.date.Fprint(p.Out, dateStr)
	fmt.Fprint(p.Out, " | ")
	kind.Fprint(p.Out, r.Kind.String())
	fmt.Fprintf(p.Out, " | %s\n", currencyutils.FormatStatementAmount(r.Amount))
}

// BatchSummary prints the outcome of a batch run.
func (p *Printer) BatchSummary(converted, total int) {
	c := p.ok
	if converted < total {
		c = p.warn
	}
	c.Fprintf(p.Out, "Convertidos %d de %d archivos\n", converted, total)
}
