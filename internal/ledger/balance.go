// Package ledger holds the pure computation core: balance derivation,
// month sequencing, and the action reducer over the root aggregate.
package ledger

import "fjacquet/finance-tracker/internal/models"

// EndingBalances replays a month's transactions over its starting balances
// and returns the per-account result. Accounts absent from the starting
// balances enter the map at zero the first time a transaction touches
// them; accounts never referenced anywhere in the month are absent from
// the result, so callers default missing lookups to zero.
func EndingBalances(m models.Month) map[string]float64 {
	balances := make(map[string]float64, len(m.StartingBalances))

	for _, b := range m.StartingBalances {
		balances[b.AccountID] = b.Amount
	}

	for _, income := range m.Incomes {
		for _, d := range income.Distributions {
			balances[d.AccountID] += d.Amount
		}
	}

	for _, expense := range m.Expenses {
		balances[expense.AccountID] -= expense.Amount
	}

	for _, transfer := range m.Transfers {
		balances[transfer.FromAccountID] -= transfer.Amount
		balances[transfer.ToAccountID] += transfer.Amount
	}

	return balances
}

// TotalIncome sums the income amounts of a month. Transfers are excluded:
// they move money between accounts without bringing any into the ledger.
func TotalIncome(m models.Month) float64 {
	var total float64
	for _, income := range m.Incomes {
		total += income.Amount
	}
	return total
}

// TotalExpenses sums the expense amounts of a month. Transfers are
// excluded for the same reason as in TotalIncome.
func TotalExpenses(m models.Month) float64 {
	var total float64
	for _, expense := range m.Expenses {
		total += expense.Amount
	}
	return total
}

// TotalSavings sums the current month's ending balances over every account
// flagged as savings. Savings accounts with no activity still count at
// their starting balance. Returns zero when no month is selected.
func TotalSavings(s models.AppState) float64 {
	month, ok := s.CurrentMonth()
	if !ok {
		return 0
	}

	balances := EndingBalances(month)

	var total float64
	for _, account := range s.Accounts {
		if account.IsSavings {
			total += balances[account.ID]
		}
	}
	return total
}
