// Package text prints the text of a statement the way the scanner sees it
package text

import (
	"fmt"

	"fjacquet/extracto/cmd/root"
	"fjacquet/extracto/internal/scanner"

	"github.com/spf13/cobra"
)

var markStarts bool

// Cmd represents the text command
var Cmd = &cobra.Command{
	Use:   "text [statement.pdf]",
	Short: "Print the normalized text lines of a PDF",
	Long: `Print the trimmed, non-empty text lines extracted from a PDF statement.

Useful to check why a transaction is missing from the output. With --mark,
lines that open a transaction (a date and a Crédito/Débito tag) are
prefixed with '*'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: textFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&markStarts, "mark", "m", false, "Mark lines that start a transaction")
}

func textFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	inputFile := root.InputFrom(args)
	if inputFile == "" {
		return fmt.Errorf("input file must be specified with -i or as an argument")
	}

	adapter, err := appContainer.GetPDFAdapter()
	if err != nil {
		return err
	}
	lines, err := adapter.ExtractLines(inputFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range lines {
		if !markStarts {
			fmt.Fprintln(out, line)
			continue
		}
		marker := " "
		if scanner.IsRecordStart(line) {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, line)
	}
	return nil
}
