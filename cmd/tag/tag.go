// Package tag manages user category overrides
package tag

import (
	"fmt"

	"askbudget/budget-buddy/cmd/root"
	"askbudget/budget-buddy/internal/store"

	"github.com/spf13/cobra"
)

var list bool

// Cmd represents the tag command
var Cmd = &cobra.Command{
	Use:   "tag [vendor] [category]",
	Short: "Assign a category to a vendor description",
	Long: `Assign a category to an exact vendor description. The override wins over
every other categorization layer. With one argument the current override is
shown; with --list all overrides are printed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: tagFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&list, "list", "l", false, "List all overrides")
}

func tagFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}
	resolver := c.GetResolver()
	out := cmd.OutOrStdout()

	switch {
	case list:
		overrides, err := resolver.Overrides()
		if err != nil {
			return err
		}
		for _, v := range store.SortedKeys(overrides) {
			fmt.Fprintf(out, "%s\t%s\n", v, overrides[v])
		}
		return nil

	case len(args) == 1:
		label, ok := resolver.GetOverride(args[0])
		if !ok {
			return fmt.Errorf("no override for %q", args[0])
		}
		fmt.Fprintln(out, label)
		return nil

	case len(args) == 2:
		if err := resolver.SetOverride(args[0], args[1]); err != nil {
			return err
		}
		label, _ := resolver.GetOverride(args[0])
		fmt.Fprintf(out, "Tagged %q as %q\n", args[0], label)
		return nil

	default:
		return cmd.Usage()
	}
}
