// Package export writes ledger data to CSV files for use outside the
// tracker (spreadsheets, archiving).
package export

import (
	"fmt"
	"os"
	"sort"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = config.Logger

// Global CSV delimiter - can be configured via centralized config or environment variable
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// TransactionRow is the unified CSV representation of one month entry,
// covering incomes, expenses, and transfers.
type TransactionRow struct {
	Kind        string  `csv:"Kind"`
	Date        string  `csv:"Date"`
	Description string  `csv:"Description"`
	Amount      float64 `csv:"Amount"`
	Category    string  `csv:"Category"`
	Account     string  `csv:"Account"`
	ToAccount   string  `csv:"ToAccount"`
}

// BalanceRow is the CSV representation of one account's computed ending
// balance for a month.
type BalanceRow struct {
	Account string  `csv:"Account"`
	Balance float64 `csv:"Balance"`
}

// MonthTransactionRows flattens a month into CSV rows. Account and
// category ids are resolved to names against the aggregate; dangling
// references fall back to the raw id so the export never fails on them.
func MonthTransactionRows(s models.AppState, m models.Month) []TransactionRow {
	rows := make([]TransactionRow, 0, len(m.Incomes)+len(m.Expenses)+len(m.Transfers))

	for _, income := range m.Incomes {
		for _, d := range income.Distributions {
			rows = append(rows, TransactionRow{
				Kind:        "income",
				Date:        income.Date,
				Description: income.Description,
				Amount:      d.Amount,
				Account:     accountName(s, d.AccountID),
			})
		}
	}

	for _, expense := range m.Expenses {
		rows = append(rows, TransactionRow{
			Kind:        "expense",
			Date:        expense.Date,
			Description: expense.Description,
			Amount:      expense.Amount,
			Category:    categoryName(s, expense.CategoryID),
			Account:     accountName(s, expense.AccountID),
		})
	}

	for _, transfer := range m.Transfers {
		rows = append(rows, TransactionRow{
			Kind:        "transfer",
			Date:        transfer.Date,
			Description: transfer.Description,
			Amount:      transfer.Amount,
			Account:     accountName(s, transfer.FromAccountID),
			ToAccount:   accountName(s, transfer.ToAccountID),
		})
	}

	return rows
}

// WriteMonthTransactionsCSV exports a month's transactions to a CSV file.
func WriteMonthTransactionsCSV(s models.AppState, m models.Month, csvFile string) error {
	rows := MonthTransactionRows(s, m)

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"month": m.Name,
		"count": len(rows),
	}).Info("Writing month transactions to CSV file")

	return writeRows(&rows, csvFile)
}

// WriteBalancesCSV exports a month's computed ending balances to a CSV
// file, one row per referenced account, sorted by account name.
func WriteBalancesCSV(s models.AppState, m models.Month, csvFile string) error {
	balances := ledger.EndingBalances(m)

	rows := make([]BalanceRow, 0, len(balances))
	for accountID, amount := range balances {
		rows = append(rows, BalanceRow{
			Account: accountName(s, accountID),
			Balance: amount,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Account < rows[j].Account })

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"month": m.Name,
		"count": len(rows),
	}).Info("Writing ending balances to CSV file")

	return writeRows(&rows, csvFile)
}

func writeRows(rows interface{}, csvFile string) error {
	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

func accountName(s models.AppState, id string) string {
	if account, ok := s.FindAccount(id); ok {
		return account.Name
	}
	return id
}

func categoryName(s models.AppState, id string) string {
	if category, ok := s.FindCategory(id); ok {
		return category.Name
	}
	return id
}
