// Package income handles income recording commands
package income

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	amount        float64
	description   string
	date          string
	distributions []string
	id            string
)

// Cmd represents the income command
var Cmd = &cobra.Command{
	Use:   "income",
	Short: "Record income in the current month",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an income split across accounts",
	Long: `Add an income to the current month. The amount is distributed across
accounts with repeated --to flags, e.g.:

  finance-tracker income add -a 3000 -d "Salary" --to checking_id:2500 --to savings_id:500

The distribution amounts must sum to the income amount.`,
	RunE: addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an income from the current month",
	RunE:  deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current month's incomes",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Income amount")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	addCmd.Flags().StringVarP(&date, "date", "t", "", "Date (defaults to today)")
	addCmd.Flags().StringArrayVar(&distributions, "to", nil, "Distribution as <accountId>:<amount>, repeatable")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("to")

	deleteCmd.Flags().StringVar(&id, "id", "", "Income id")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd, deleteCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	parsed, err := parseDistributions(distributions)
	if err != nil {
		return err
	}

	income := models.Income{
		ID:            models.NewID("income"),
		Amount:        amount,
		Description:   description,
		Date:          resolveDate(date),
		Distributions: parsed,
	}
	if err := validation.ValidateIncome(income); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.AddIncome{Income: income})
	root.Log.WithField("id", income.ID).Infof("Added income of %.2f", income.Amount)
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	root.Ledger.Dispatch(models.DeleteIncome{IncomeID: id})
	root.Log.Infof("Deleted income %s", id)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	month, ok := root.Ledger.CurrentMonth()
	if !ok {
		fmt.Println("No month selected")
		return nil
	}
	if len(month.Incomes) == 0 {
		fmt.Println("No incomes this month")
		return nil
	}
	for _, income := range month.Incomes {
		fmt.Printf("%-12s %-30s %10.2f  [%s]\n", income.Date, income.Description, income.Amount, income.ID)
	}
	return nil
}

// parseDistributions turns repeated <accountId>:<amount> flags into
// distribution values.
func parseDistributions(specs []string) ([]models.Distribution, error) {
	out := make([]models.Distribution, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, &ledgererror.ValidationError{
				Entity: "income",
				Field:  "distributions",
				Reason: fmt.Sprintf("expected <accountId>:<amount>, got '%s'", spec),
			}
		}
		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, &ledgererror.ValidationError{
				Entity: "income",
				Field:  "distributions",
				Reason: fmt.Sprintf("invalid amount in '%s'", spec),
			}
		}
		out = append(out, models.Distribution{AccountID: parts[0], Amount: value})
	}
	return out, nil
}

func resolveDate(raw string) string {
	if raw == "" {
		return time.Now().Format(dateutils.DateLayoutISO)
	}
	if t, _, err := dateutils.ParseDate(raw); err == nil {
		return dateutils.FormatDate(t, dateutils.DateLayoutISO)
	}
	return raw
}
