// Package converter is the public entry point for converting Bancolombia
// PDF statements from other Go programs.
package converter

import (
	"time"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/pdfparser"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Transaction is one statement movement.
type Transaction struct {
	// Date is zero when RawDate could not be read.
	Date        time.Time
	RawDate     string
	Kind        string
	Description string
	Amount      decimal.Decimal
}

// Options tunes a conversion. The zero value converts to xlsx using the
// auto extractor and logs nothing below warnings.
type Options struct {
	// Format is "xlsx" or "csv".
	Format string
	// Backend is "auto", "native" or "pdftotext".
	Backend string
	// Logger receives progress logs; nil discards them below warn level.
	Logger *logrus.Logger
}

func (o Options) adapter() *pdfparser.Adapter {
	cfg := config.Default()
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Backend != "" {
		cfg.Extractor.Backend = o.Backend
	}

	var logger logging.Logger
	if o.Logger != nil {
		logger = logging.NewLogrusAdapterFromLogger(o.Logger)
	} else {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return pdfparser.NewAdapter(logger, nil, cfg)
}

// ParseFile reads the statement at pdfPath and returns its transactions,
// newest first.
func ParseFile(pdfPath string, opts Options) ([]Transaction, error) {
	records, err := opts.adapter().ParseFile(pdfPath)
	if err != nil {
		return nil, err
	}

	out := make([]Transaction, len(records))
	for i, r := range records {
		out[i] = Transaction{
			Date:        r.Date,
			RawDate:     r.DateOriginal,
			Kind:        r.Kind.String(),
			Description: r.Description,
			Amount:      r.Amount,
		}
	}
	return out, nil
}

// Convert writes the transactions of inputFile to outputFile and returns
// how many were written.
func Convert(inputFile, outputFile string, opts Options) (int, error) {
	result, err := opts.adapter().Convert(inputFile, outputFile)
	if err != nil {
		return 0, err
	}
	return len(result.Records), nil
}
