package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/freeeve/sqlfront/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List registered dialects and their capability flags",
	RunE:  runDialects,
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}

func runDialects(cmd *cobra.Command, args []string) error {
	all := dialect.All()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	for _, d := range all {
		fmt.Printf("%-12s qualify=%-5v filter=%-5v ilike=%-5v top=%-5v hooks=%v\n",
			d.Name, d.SupportsQualify, d.SupportsFilter, d.SupportsIlike, d.SupportsTopClause,
			d.ParseStatementHook != nil || d.ParsePrefixHook != nil || d.ParseInfixHook != nil || d.NextPrecedenceHook != nil)
	}
	return nil
}
