// Package parse handles the statement parsing command
package parse

import (
	"fmt"

	"askbudget/budget-buddy/cmd/common"
	"askbudget/budget-buddy/cmd/root"
	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"

	"github.com/spf13/cobra"
)

var (
	source     string
	format     string
	categorize bool
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract transactions from a PhonePe or SBI statement",
	Long: `Extract transactions from a PhonePe or SBI PDF statement and write them
as CSV or JSON. With --categorize every transaction also gets a category.`,
	Example: `  budget-buddy parse -i statement.pdf -s phonepe
  budget-buddy parse -i sbi.pdf -s sbi -o april.json --categorize`,
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&source, "source", "s", "", fmt.Sprintf("Statement source (%s)", models.SupportedSourcesString()))
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: csv or json (default: from output extension, else csv)")
	Cmd.Flags().BoolVarP(&categorize, "categorize", "c", false, "Resolve a category for every transaction")
	_ = Cmd.MarkFlagRequired("source")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("an input file is required (-i)")
	}

	transactions, err := common.ProcessStatement(cmd.Context(), root.GetContainer(), common.ProcessOptions{
		InputFile:  root.SharedFlags.Input,
		OutputFile: root.SharedFlags.Output,
		Source:     source,
		Format:     format,
		Categorize: categorize,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	root.Log.Info("Parse command completed",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
