// Package report prints month summaries and exports ledger data to CSV
package report

import (
	"fmt"
	"sort"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/export"
	"fjacquet/finance-tracker/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	output   string
	balances bool
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show the current month's balances, totals, and savings",
	Long: `Show the current month's derived state: per-account ending balances,
total income and expenses (transfers excluded), and total savings. With
--output the month's transactions are also exported to CSV; add
--balances to export ending balances instead.`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Export to CSV file")
	Cmd.Flags().BoolVarP(&balances, "balances", "b", false, "Export ending balances instead of transactions")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	state := root.Ledger.State()
	month, ok := state.CurrentMonth()
	if !ok {
		fmt.Println("No month selected")
		return nil
	}

	fmt.Printf("%s\n\n", month.Name)

	ending := ledger.EndingBalances(month)
	accountIDs := make([]string, 0, len(ending))
	for accountID := range ending {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	for _, accountID := range accountIDs {
		name := accountID
		if account, found := state.FindAccount(accountID); found {
			name = account.Name
		}
		fmt.Printf("  %-30s %12.2f\n", name, ending[accountID])
	}

	fmt.Printf("\n  %-30s %12.2f\n", "Total income", ledger.TotalIncome(month))
	fmt.Printf("  %-30s %12.2f\n", "Total expenses", ledger.TotalExpenses(month))
	fmt.Printf("  %-30s %12.2f\n", "Total savings", ledger.TotalSavings(state))

	if output == "" {
		return nil
	}
	if balances {
		return export.WriteBalancesCSV(state, month, output)
	}
	return export.WriteMonthTransactionsCSV(state, month, output)
}
