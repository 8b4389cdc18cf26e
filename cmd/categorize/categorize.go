// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"
	"strings"

	"askbudget/budget-buddy/cmd/root"
	"askbudget/budget-buddy/internal/models"

	"github.com/spf13/cobra"
)

var txnType string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize <description>",
	Short: "Categorize a transaction description",
	Long: `Categorize a transaction description using, in order, your overrides,
the category cache, the Gemini classifier (when enabled) and the keyword rules.`,
	Args: cobra.MinimumNArgs(1),
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&txnType, "type", "t", string(models.TxnTypeDebit), "Transaction type (DEBIT or CREDIT)")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}

	t := models.TxnType(strings.ToUpper(strings.TrimSpace(txnType)))
	if !t.IsValid() {
		return fmt.Errorf("invalid transaction type %q (use DEBIT or CREDIT)", txnType)
	}

	tx := models.Transaction{
		Description: strings.TrimSpace(strings.Join(args, " ")),
		TxnType:     t,
	}
	category := c.GetResolver().ResolveCategory(cmd.Context(), tx)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), category)
	return err
}
