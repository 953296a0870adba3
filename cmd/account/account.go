// Package account handles account management commands
package account

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	name    string
	color   string
	savings bool
	id      string
)

// Cmd represents the account command
var Cmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
	Long:  `Add, update, delete, and list the accounts money is tracked in.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new account",
	RunE:  addFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing account",
	RunE:  updateFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an account that no transaction references",
	RunE:  deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with their current month balances",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Account name")
	addCmd.Flags().StringVarP(&color, "color", "c", "#2563eb", "Display color")
	addCmd.Flags().BoolVarP(&savings, "savings", "s", false, "Mark as a savings account")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringVar(&id, "id", "", "Account id")
	updateCmd.Flags().StringVarP(&name, "name", "n", "", "Account name")
	updateCmd.Flags().StringVarP(&color, "color", "c", "", "Display color")
	updateCmd.Flags().BoolVarP(&savings, "savings", "s", false, "Mark as a savings account")
	_ = updateCmd.MarkFlagRequired("id")

	deleteCmd.Flags().StringVar(&id, "id", "", "Account id")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd, updateCmd, deleteCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	account := models.Account{
		ID:        models.NewID("account"),
		Name:      name,
		Color:     color,
		IsSavings: savings,
	}
	if err := validation.ValidateAccount(account); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.AddAccount{Account: account})
	root.Log.WithField("id", account.ID).Infof("Added account '%s'", account.Name)
	return nil
}

func updateFunc(cmd *cobra.Command, args []string) error {
	existing, ok := root.Ledger.State().FindAccount(id)
	if !ok {
		return &ledgererror.NotFoundError{Entity: "account", ID: id}
	}

	if cmd.Flags().Changed("name") {
		existing.Name = name
	}
	if cmd.Flags().Changed("color") {
		existing.Color = color
	}
	if cmd.Flags().Changed("savings") {
		existing.IsSavings = savings
	}
	if err := validation.ValidateAccount(existing); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.UpdateAccount{Account: existing})
	root.Log.Infof("Updated account '%s'", existing.Name)
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	if err := validation.CanDeleteAccount(root.Ledger.State(), id); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.DeleteAccount{AccountID: id})
	root.Log.Infof("Deleted account %s", id)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	state := root.Ledger.State()
	if len(state.Accounts) == 0 {
		fmt.Println("No accounts yet")
		return nil
	}

	balances := map[string]float64{}
	if month, ok := state.CurrentMonth(); ok {
		balances = ledger.EndingBalances(month)
	}

	for _, account := range state.Accounts {
		kind := ""
		if account.IsSavings {
			kind = " (savings)"
		}
		fmt.Printf("%-30s %10.2f%s  [%s]\n", account.Name, balances[account.ID], kind, account.ID)
	}
	return nil
}
