package categorizer

import (
	"context"
	"fmt"
	"strings"

	"askbudget/budget-buddy/internal/models"
)

// ClassificationService is the remote text classifier. The response is free
// text and is validated against the known label set before use.
//
// Classify should return once ctx is done. AIStrategy stops waiting at the
// deadline either way, but a call that ignores ctx keeps its goroutine alive
// until it returns.
type ClassificationService interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// SystemInstruction frames every classification request.
const SystemInstruction = "You are a finance assistant that classifies spending."

// BuildPrompt embeds the description and transaction type in the
// classification request, listing the known labels with "other" last.
func BuildPrompt(description string, txnType models.TxnType) string {
	labels := make([]string, 0, len(models.KnownCategories()))
	for _, c := range models.KnownCategories() {
		if c != models.CategoryOther {
			labels = append(labels, string(c))
		}
	}

	return fmt.Sprintf("Classify the following transaction description into a category like %s, or %s:\n\n"+
		"Description: %s\n"+
		"Transaction Type: %s\n\n"+
		"Just return a category name without any explanation.",
		strings.Join(labels, ", "), models.CategoryOther, description, txnType)
}

// NormalizeResponse reduces a model answer such as ` "Food."` to a bare
// lowercase label. Only the first non-empty line is considered.
func NormalizeResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.Trim(line, " \t\r\"'`*.,:;!")
		if line == "" {
			continue
		}
		if i := strings.Index(line, ":"); i >= 0 && strings.EqualFold(strings.TrimSpace(line[:i]), "category") {
			line = strings.Trim(line[i+1:], " \t\"'`*.,:;!")
		}
		return strings.ToLower(line)
	}
	return ""
}
