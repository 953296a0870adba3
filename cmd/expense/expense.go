// Package expense handles expense recording commands
package expense

import (
	"fmt"
	"time"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	amount      float64
	description string
	date        string
	categoryID  string
	accountID   string
	id          string
)

// Cmd represents the expense command
var Cmd = &cobra.Command{
	Use:   "expense",
	Short: "Record expenses in the current month",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense",
	RunE:  addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an expense from the current month",
	RunE:  deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current month's expenses",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Expense amount")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	addCmd.Flags().StringVarP(&date, "date", "t", "", "Date (defaults to today)")
	addCmd.Flags().StringVarP(&categoryID, "category", "c", "", "Category id")
	addCmd.Flags().StringVar(&accountID, "account", "", "Account id to spend from")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("account")

	deleteCmd.Flags().StringVar(&id, "id", "", "Expense id")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd, deleteCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	expense := models.Expense{
		ID:          models.NewID("expense"),
		Amount:      amount,
		Description: description,
		Date:        resolveDate(date),
		CategoryID:  categoryID,
		AccountID:   accountID,
	}
	if err := validation.ValidateExpense(expense); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.AddExpense{Expense: expense})
	root.Log.WithField("id", expense.ID).Infof("Added expense of %.2f", expense.Amount)
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	root.Ledger.Dispatch(models.DeleteExpense{ExpenseID: id})
	root.Log.Infof("Deleted expense %s", id)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	month, ok := root.Ledger.CurrentMonth()
	if !ok {
		fmt.Println("No month selected")
		return nil
	}
	if len(month.Expenses) == 0 {
		fmt.Println("No expenses this month")
		return nil
	}
	state := root.Ledger.State()
	for _, expense := range month.Expenses {
		categoryName := expense.CategoryID
		if category, ok := state.FindCategory(expense.CategoryID); ok {
			categoryName = category.Name
		}
		fmt.Printf("%-12s %-30s %10.2f  %-15s [%s]\n",
			expense.Date, expense.Description, expense.Amount, categoryName, expense.ID)
	}
	return nil
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
