package ledger

import (
	"sort"

	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/models"
)

// NextMonth derives the successor of a month: the following calendar month
// with empty transaction lists and starting balances snapshotted from the
// predecessor's ending balances. The snapshot is taken at call time and is
// never reconciled afterwards, so edits to the predecessor after the
// successor exists do not flow forward.
func NextMonth(prev models.Month) models.Month {
	year := prev.Year
	month := prev.Month + 1
	if month > 11 {
		month = 0
		year++
	}

	ending := EndingBalances(prev)

	// Sort for a stable serialized order; map iteration order is random.
	accountIDs := make([]string, 0, len(ending))
	for accountID := range ending {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	startingBalances := make([]models.Balance, 0, len(accountIDs))
	for _, accountID := range accountIDs {
		startingBalances = append(startingBalances, models.Balance{
			AccountID: accountID,
			Amount:    ending[accountID],
		})
	}

	return models.Month{
		ID:               models.MonthID(year, month),
		Name:             dateutils.MonthDisplayName(year, month),
		Year:             year,
		Month:            month,
		Incomes:          []models.Income{},
		Expenses:         []models.Expense{},
		Transfers:        []models.Transfer{},
		StartingBalances: startingBalances,
	}
}

// CreateNextMonth materializes the current month's successor and makes it
// current. Missing current month or an already-existing successor leaves
// the state untouched; the month id is a natural key over (year, month),
// so calling twice in a row is idempotent.
func CreateNextMonth(s models.AppState) models.AppState {
	current, ok := s.CurrentMonth()
	if !ok {
		return s
	}

	next := NextMonth(current)
	for _, m := range s.Months {
		if m.ID == next.ID {
			return s
		}
	}

	months := make([]models.Month, len(s.Months), len(s.Months)+1)
	copy(months, s.Months)
	s.Months = append(months, next)
	s.CurrentMonthID = next.ID
	return s
}

// InitialState builds a fresh aggregate seeded with the given calendar
// month and nothing else. Used on first run and when a persisted blob
// cannot be read.
func InitialState(year, month int) models.AppState {
	initial := models.Month{
		ID:               models.MonthID(year, month),
		Name:             dateutils.MonthDisplayName(year, month),
		Year:             year,
		Month:            month,
		Incomes:          []models.Income{},
		Expenses:         []models.Expense{},
		Transfers:        []models.Transfer{},
		StartingBalances: []models.Balance{},
	}

	return models.AppState{
		Accounts:       []models.Account{},
		Categories:     []models.Category{},
		Months:         []models.Month{initial},
		CurrentMonthID: initial.ID,
		Goals:          []models.Goal{},
	}
}
