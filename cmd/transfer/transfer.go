// Package transfer handles inter-account transfer commands
package transfer

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
	fromAccount string
	toAccount   string
	id          string
)

// Cmd represents the transfer command
var Cmd = &cobra.Command{
	Use:   "transfer",
	Short: "Move money between accounts in the current month",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transfer between two accounts",
	RunE:  addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a transfer from the current month",
	RunE:  deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current month's transfers",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Transfer amount")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	addCmd.Flags().StringVarP(&date, "date", "t", "", "Date (defaults to today)")
	addCmd.Flags().StringVar(&fromAccount, "from", "", "Source account id")
	addCmd.Flags().StringVar(&toAccount, "to", "", "Destination account id")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("from")
	_ = addCmd.MarkFlagRequired("to")

	deleteCmd.Flags().StringVar(&id, "id", "", "Transfer id")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd, deleteCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	transfer := models.Transfer{
		ID:            models.NewID("transfer"),
		Amount:        amount,
		Description:   description,
		Date:          resolveDate(date),
		FromAccountID: fromAccount,
		ToAccountID:   toAccount,
	}
	if err := validation.ValidateTransfer(transfer); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.AddTransfer{Transfer: transfer})
	root.Log.WithField("id", transfer.ID).Infof("Added transfer of %.2f", transfer.Amount)
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	root.Ledger.Dispatch(models.DeleteTransfer{TransferID: id})
	root.Log.Infof("Deleted transfer %s", id)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	month, ok := root.Ledger.CurrentMonth()
	if !ok {
		fmt.Println("No month selected")
		return nil
	}
	if len(month.Transfers) == 0 {
		fmt.Println("No transfers this month")
		return nil
	}
	state := root.Ledger.State()
	for _, transfer := range month.Transfers {
		fmt.Printf("%-12s %-30s %10.2f  %s -> %s  [%s]\n",
			transfer.Date, transfer.Description, transfer.Amount,
			accountName(state, transfer.FromAccountID),
			accountName(state, transfer.ToAccountID),
			transfer.ID)
	}
	return nil
}

func accountName(s models.AppState, id string) string {
	if account, ok := s.FindAccount(id); ok {
		return account.Name
	}
	return id
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
