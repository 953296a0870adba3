// Package validation performs boundary checks on user input before an
// action is constructed, plus the referential-integrity guards the reducer
// deliberately does not repeat.
package validation

import (
	"math"
	"strings"

	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/models"
)

// DistributionEpsilon is the tolerance when checking that an income's
// distributions sum to its amount. Amounts are float64, so an exact
// comparison would reject legitimate splits.
const DistributionEpsilon = 0.01

// ValidateAccount checks an account before insert or update.
func ValidateAccount(a models.Account) error {
	if strings.TrimSpace(a.Name) == "" {
		return &ledgererror.ValidationError{Entity: "account", Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// ValidateCategory checks a category before insert or update.
func ValidateCategory(c models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ledgererror.ValidationError{Entity: "category", Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// ValidateGoal checks a goal before insert or update.
func ValidateGoal(g models.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return &ledgererror.ValidationError{Entity: "goal", Field: "title", Reason: "must not be empty"}
	}
	if g.TargetAmount <= 0 {
		return &ledgererror.ValidationError{Entity: "goal", Field: "targetAmount", Reason: "must be positive"}
	}
	return nil
}

// ValidateIncome checks an income before it enters the store: positive
// amount and distributions summing to the amount within tolerance.
func ValidateIncome(income models.Income) error {
	if income.Amount <= 0 {
		return &ledgererror.ValidationError{Entity: "income", Field: "amount", Reason: "must be positive"}
	}
	if len(income.Distributions) == 0 {
		return &ledgererror.ValidationError{Entity: "income", Field: "distributions", Reason: "must not be empty"}
	}

	var sum float64
	for _, d := range income.Distributions {
		if d.AccountID == "" {
			return &ledgererror.ValidationError{Entity: "income", Field: "distributions", Reason: "distribution missing account"}
		}
		sum += d.Amount
	}
	if math.Abs(sum-income.Amount) > DistributionEpsilon {
		return &ledgererror.ValidationError{
			Entity: "income",
			Field:  "distributions",
			Reason: "distribution amounts must sum to the income amount",
		}
	}
	return nil
}

// ValidateExpense checks an expense before it enters the store.
func ValidateExpense(e models.Expense) error {
	if e.Amount <= 0 {
		return &ledgererror.ValidationError{Entity: "expense", Field: "amount", Reason: "must be positive"}
	}
	if e.AccountID == "" {
		return &ledgererror.ValidationError{Entity: "expense", Field: "accountId", Reason: "must not be empty"}
	}
	if e.CategoryID == "" {
		return &ledgererror.ValidationError{Entity: "expense", Field: "categoryId", Reason: "must not be empty"}
	}
	return nil
}

// ValidateTransfer checks a transfer before it enters the store.
func ValidateTransfer(t models.Transfer) error {
	if t.Amount <= 0 {
		return &ledgererror.ValidationError{Entity: "transfer", Field: "amount", Reason: "must be positive"}
	}
	if t.FromAccountID == "" || t.ToAccountID == "" {
		return &ledgererror.ValidationError{Entity: "transfer", Field: "accounts", Reason: "both endpoints are required"}
	}
	if t.FromAccountID == t.ToAccountID {
		return &ledgererror.ValidationError{Entity: "transfer", Field: "accounts", Reason: "source and destination must differ"}
	}
	return nil
}

// CanDeleteAccount rejects deletion while any expense, transfer, or income
// distribution in any month still references the account.
func CanDeleteAccount(s models.AppState, accountID string) error {
	if _, ok := s.FindAccount(accountID); !ok {
		return &ledgererror.NotFoundError{Entity: "account", ID: accountID}
	}

	for _, month := range s.Months {
		for _, expense := range month.Expenses {
			if expense.AccountID == accountID {
				return &ledgererror.ReferenceError{Entity: "account", ID: accountID, ReferencedBy: "an expense in " + month.Name}
			}
		}
		for _, transfer := range month.Transfers {
			if transfer.FromAccountID == accountID || transfer.ToAccountID == accountID {
				return &ledgererror.ReferenceError{Entity: "account", ID: accountID, ReferencedBy: "a transfer in " + month.Name}
			}
		}
		for _, income := range month.Incomes {
			for _, d := range income.Distributions {
				if d.AccountID == accountID {
					return &ledgererror.ReferenceError{Entity: "account", ID: accountID, ReferencedBy: "an income distribution in " + month.Name}
				}
			}
		}
	}
	return nil
}

// CanDeleteCategory rejects deletion while any expense in any month still
// references the category.
func CanDeleteCategory(s models.AppState, categoryID string) error {
	if _, ok := s.FindCategory(categoryID); !ok {
		return &ledgererror.NotFoundError{Entity: "category", ID: categoryID}
	}

	for _, month := range s.Months {
		for _, expense := range month.Expenses {
			if expense.CategoryID == categoryID {
				return &ledgererror.ReferenceError{Entity: "category", ID: categoryID, ReferencedBy: "an expense in " + month.Name}
			}
		}
	}
	return nil
}

// CanCompleteGoal checks that a goal can actually be completed: it exists,
// is still active, a savings account exists to spend from, and the current
// savings cover the target.
func CanCompleteGoal(s models.AppState, goalID string) error {
	goal, ok := s.FindGoal(goalID)
	if !ok {
		return &ledgererror.NotFoundError{Entity: "goal", ID: goalID}
	}
	if goal.IsCompleted {
		return &ledgererror.ValidationError{Entity: "goal", Reason: "already completed"}
	}
	if _, ok := s.SavingsAccount(); !ok {
		return &ledgererror.ValidationError{Entity: "goal", Reason: "no savings account exists to spend from"}
	}
	if ledger.TotalSavings(s) < goal.TargetAmount {
		return &ledgererror.ValidationError{Entity: "goal", Reason: "total savings are below the target amount"}
	}
	return nil
}
