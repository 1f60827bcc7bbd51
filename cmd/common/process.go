// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/fileutils"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/parser"
	"fjacquet/extracto/internal/parsererror"
	"fjacquet/extracto/internal/report"
)

// ProcessFile converts one file with the given parser, printing progress
// and the summary through printer. Failures are printed and returned.
func ProcessFile(p parser.FullParser, inputFile, outputFile string, validate bool, log logging.Logger, printer *report.Printer) (*parser.Result, error) {
	p.SetLogger(log)
	printer.Processing(inputFile)

	if validate {
		log.Debug("Validating format...", logging.F(logging.FieldFile, inputFile))
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			printer.Failure("Error validando el archivo '%s': %v", inputFile, err)
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			printer.Failure("El archivo '%s' no es un PDF válido.", inputFile)
			return nil, &parsererror.InvalidFormatError{
				FilePath:       inputFile,
				ExpectedFormat: "PDF",
				Msg:            "missing %PDF- header",
			}
		}
		log.Debug("Validation successful.")
	}

	result, err := p.Convert(inputFile, outputFile)
	if err != nil {
		printFailure(printer, inputFile, err)
		return nil, err
	}

	printer.Saved(result.OutputFile)
	printer.Summary(result)
	return result, nil
}

func printFailure(printer *report.Printer, inputFile string, err error) {
	var validationErr *parsererror.ValidationError
	var extractionErr *parsererror.DataExtractionError
	switch {
	case errors.As(err, &validationErr):
		printer.Failure("Error: El archivo '%s' no existe.", inputFile)
	case errors.Is(err, parsererror.ErrNoTransactions):
		printer.Failure("No se pudieron extraer transacciones del PDF.")
	case errors.As(err, &extractionErr):
		printer.Failure("Error procesando el PDF: %v", extractionErr.Err)
	default:
		printer.Failure("Error: %v", err)
	}
}

// OutputPath returns output when set, otherwise the default name derived
// from the input in the working directory.
func OutputPath(inputFile, output string, cfg *config.Config) string {
	if output != "" {
		return output
	}
	return fileutils.DefaultOutputPath(inputFile, cfg.Output.Suffix, cfg.Output.Format)
}

// NewPrinter builds the console printer configured by cfg.
func NewPrinter(cfg *config.Config, out io.Writer) *report.Printer {
	return report.NewPrinter(out, cfg.Output.PreviewRows, cfg.Output.Color)
}
