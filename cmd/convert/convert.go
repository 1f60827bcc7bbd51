// Package convert handles the single statement conversion command
package convert

import (
	"fmt"

	"fjacquet/extracto/cmd/common"
	"fjacquet/extracto/cmd/root"
	"fjacquet/extracto/internal/fileutils"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/validation"

	"github.com/spf13/cobra"
)

var (
	format   string
	dumpText string
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert [statement.pdf]",
	Short: "Convert a PDF statement to Excel",
	Long: `Convert a Bancolombia PDF statement to a spreadsheet.

Without -o the output is written to the current directory as
<input name>_Movimientos.xlsx.

Example:
  extracto convert -i Extracto_Enero.pdf
  extracto convert Extracto_Enero.pdf --format csv -o enero.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: xlsx or csv (default from config)")
	Cmd.Flags().StringVar(&dumpText, "dump-text", "", "Also write the normalized text lines to this file")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()
	cfg := appContainer.GetConfig()

	inputFile := root.InputFrom(args)
	if inputFile == "" {
		return fmt.Errorf("input file must be specified with -i or as an argument")
	}

	if format != "" {
		if err := validation.IsValidOutputFormat(format); err != nil {
			return err
		}
		cfg.Output.Format = format
	}

	adapter, err := appContainer.GetPDFAdapter()
	if err != nil {
		return fmt.Errorf("error getting PDF parser: %w", err)
	}

	if dumpText != "" && fileutils.FileExists(inputFile) {
		lines, err := adapter.ExtractLines(inputFile)
		if err != nil {
			return err
		}
		if err := fileutils.WriteLines(dumpText, lines); err != nil {
			return err
		}
		logger.Info("Wrote extracted text",
			logging.F(logging.FieldOutputFile, dumpText),
			logging.F(logging.FieldLine, len(lines)))
	}

	outputFile := common.OutputPath(inputFile, root.SharedFlags.Output, cfg)
	logger.Debug("Convert command called",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldFormat, cfg.Output.Format))

	printer := common.NewPrinter(cfg, cmd.OutOrStdout())
	_, err = common.ProcessFile(adapter, inputFile, outputFile, root.SharedFlags.Validate, logger, printer)
	return err
}
