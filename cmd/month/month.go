// Package month handles month lifecycle commands
package month

import (
	"fmt"
	"sort"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/models"

	"github.com/spf13/cobra"
)

var (
	year     int
	monthIdx int
)

// Cmd represents the month command
var Cmd = &cobra.Command{
	Use:   "month",
	Short: "Manage the month chain",
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Create the next month from the current one",
	Long: `Create the month following the current one. Its starting balances are
snapshotted from the current month's computed ending balances. Creating a
month that already exists is a no-op.`,
	RunE: nextFunc,
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the month to view and edit",
	RunE:  selectFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all months in chronological order",
	RunE:  listFunc,
}

func init() {
	selectCmd.Flags().IntVarP(&year, "year", "y", 0, "Year, e.g. 2026")
	selectCmd.Flags().IntVarP(&monthIdx, "month", "m", 0, "Month index 0-11 (0 = January)")
	_ = selectCmd.MarkFlagRequired("year")
	_ = selectCmd.MarkFlagRequired("month")

	Cmd.AddCommand(nextCmd, selectCmd, listCmd)
}

func nextFunc(cmd *cobra.Command, args []string) error {
	before := root.Ledger.State().CurrentMonthID
	root.Ledger.Dispatch(models.CreateNextMonth{})
	after := root.Ledger.State()

	if after.CurrentMonthID == before {
		root.Log.Info("Next month already exists or no month is selected; nothing to do")
		return nil
	}

	current, _ := after.CurrentMonth()
	root.Log.Infof("Created and selected %s", current.Name)
	return nil
}

func selectFunc(cmd *cobra.Command, args []string) error {
	id := models.MonthID(year, monthIdx)
	if _, ok := findMonth(root.Ledger.State(), id); !ok {
		root.Log.Warnf("Month %s does not exist yet; selecting it anyway", id)
	}

	root.Ledger.Dispatch(models.SetCurrentMonth{MonthID: id})
	root.Log.Infof("Selected month %s", id)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	state := root.Ledger.State()
	if len(state.Months) == 0 {
		fmt.Println("No months yet")
		return nil
	}

	// The chain has no explicit links; chronological order is (year, month).
	months := make([]models.Month, len(state.Months))
	copy(months, state.Months)
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})

	for _, m := range months {
		marker := " "
		if m.ID == state.CurrentMonthID {
			marker = "*"
		}
		fmt.Printf("%s %-20s %3d incomes %3d expenses %3d transfers\n",
			marker, m.Name, len(m.Incomes), len(m.Expenses), len(m.Transfers))
	}
	return nil
}

func findMonth(s models.AppState, id string) (models.Month, bool) {
	for _, m := range s.Months {
		if m.ID == id {
			return m, true
		}
	}
	return models.Month{}, false
}
