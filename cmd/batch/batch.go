// Package batch handles batch processing of files
package batch

import (
	"fmt"

	"fjacquet/extracto/cmd/common"
	"fjacquet/extracto/cmd/root"
	"fjacquet/extracto/internal/fileutils"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/parser"
	"fjacquet/extracto/internal/report"
	"fjacquet/extracto/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statements from a directory",
	Long: `Batch process statements from an input directory and write them to another directory.

Every *.pdf file in the input directory is converted on its own. A file that
fails is reported and skipped; the others are still converted.

Example:
  extracto batch -i extractos/ -o movimientos/`,
	RunE: batchFunc,
}

func init() {
	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()

	if err := validation.IsValidInputDir(inputDir); err != nil {
		return err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	p, err := appContainer.GetParser(parser.PDF)
	if err != nil {
		return fmt.Errorf("failed to get PDF parser: %w", err)
	}

	printer := common.NewPrinter(appContainer.GetConfig(), cmd.OutOrStdout())
	count, total, err := convertDirectory(p, inputDir, outputDir, root.SharedFlags.Validate, appContainer.GetConfig().Output.Suffix, appContainer.GetConfig().Output.Format, logger, printer)
	if err != nil {
		return fmt.Errorf("error during batch conversion: %w", err)
	}

	printer.BatchSummary(count, total)
	logger.Info("Batch processing completed",
		logging.F(logging.FieldCount, count),
		logging.F("files", total))
	return nil
}

// convertDirectory converts every PDF under inputDir. It returns how many
// files were converted out of how many were found.
func convertDirectory(p parser.FullParser, inputDir, outputDir string, validate bool, suffix, format string, logger logging.Logger, printer *report.Printer) (int, int, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return 0, 0, err
	}
	if len(files) == 0 {
		logger.Warn("No PDF files found in input directory", logging.F(logging.FieldFile, inputDir))
		return 0, 0, nil
	}

	logger.Info("Found files for processing", logging.F(logging.FieldCount, len(files)))

	converted := 0
	for _, inputFile := range files {
		outputFile := fileutils.OutputPathInDir(outputDir, inputFile, suffix, format)
		if _, err := common.ProcessFile(p, inputFile, outputFile, validate, logger, printer); err != nil {
			logger.WithError(err).Warn("Skipping file",
				logging.F(logging.FieldInputFile, inputFile))
			continue
		}
		converted++
	}
	return converted, len(files), nil
}
