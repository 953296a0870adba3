package validation

import (
	"testing"

	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccount(t *testing.T) {
	assert.NoError(t, ValidateAccount(models.Account{ID: "a", Name: "Checking"}))
	assert.Error(t, ValidateAccount(models.Account{ID: "a", Name: ""}))
	assert.Error(t, ValidateAccount(models.Account{ID: "a", Name: "   "}))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory(models.Category{ID: "c", Name: "Groceries"}))
	assert.Error(t, ValidateCategory(models.Category{ID: "c", Name: ""}))
}

func TestValidateGoal(t *testing.T) {
	tests := []struct {
		name    string
		goal    models.Goal
		wantErr bool
	}{
		{"valid", models.Goal{Title: "Bike", TargetAmount: 300}, false},
		{"zero target", models.Goal{Title: "Bike", TargetAmount: 0}, true},
		{"negative target", models.Goal{Title: "Bike", TargetAmount: -5}, true},
		{"empty title", models.Goal{Title: "", TargetAmount: 300}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateGoal(tc.goal)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateIncome(t *testing.T) {
	tests := []struct {
		name    string
		income  models.Income
		wantErr bool
	}{
		{
			"balanced distributions",
			models.Income{Amount: 100, Distributions: []models.Distribution{
				{AccountID: "a", Amount: 60},
				{AccountID: "b", Amount: 40},
			}},
			false,
		},
		{
			"within epsilon",
			models.Income{Amount: 100, Distributions: []models.Distribution{
				{AccountID: "a", Amount: 50},
				{AccountID: "b", Amount: 49.995},
			}},
			false,
		},
		{
			"unbalanced",
			models.Income{Amount: 100, Distributions: []models.Distribution{
				{AccountID: "a", Amount: 50},
			}},
			true,
		},
		{
			"non-positive amount",
			models.Income{Amount: 0, Distributions: []models.Distribution{
				{AccountID: "a", Amount: 0},
			}},
			true,
		},
		{
			"no distributions",
			models.Income{Amount: 100},
			true,
		},
		{
			"distribution without account",
			models.Income{Amount: 100, Distributions: []models.Distribution{
				{AccountID: "", Amount: 100},
			}},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIncome(tc.income)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExpense(t *testing.T) {
	valid := models.Expense{Amount: 10, AccountID: "a", CategoryID: "c"}
	assert.NoError(t, ValidateExpense(valid))

	noAmount := valid
	noAmount.Amount = -1
	assert.Error(t, ValidateExpense(noAmount))

	noAccount := valid
	noAccount.AccountID = ""
	assert.Error(t, ValidateExpense(noAccount))

	noCategory := valid
	noCategory.CategoryID = ""
	assert.Error(t, ValidateExpense(noCategory))
}

func TestValidateTransfer(t *testing.T) {
	valid := models.Transfer{Amount: 10, FromAccountID: "a", ToAccountID: "b"}
	assert.NoError(t, ValidateTransfer(valid))

	same := valid
	same.ToAccountID = "a"
	err := ValidateTransfer(same)
	require.Error(t, err)
	var verr *ledgererror.ValidationError
	assert.ErrorAs(t, err, &verr)

	negative := valid
	negative.Amount = -3
	assert.Error(t, ValidateTransfer(negative))
}

func guardState() models.AppState {
	return models.AppState{
		Accounts: []models.Account{
			{ID: "checking", Name: "Checking"},
			{ID: "savings", Name: "Savings", IsSavings: true},
			{ID: "unused", Name: "Unused"},
		},
		Categories: []models.Category{
			{ID: "groceries", Name: "Groceries"},
			{ID: "idle", Name: "Idle"},
		},
		Months: []models.Month{
			{
				ID:   "month_2026_6",
				Name: "July 2026",
				StartingBalances: []models.Balance{
					{AccountID: "checking", Amount: 100},
					{AccountID: "savings", Amount: 400},
				},
				Expenses: []models.Expense{
					{ID: "e1", Amount: 20, AccountID: "checking", CategoryID: "groceries"},
				},
				Transfers: []models.Transfer{
					{ID: "t1", Amount: 50, FromAccountID: "checking", ToAccountID: "savings"},
				},
				Incomes: []models.Income{
					{ID: "i1", Amount: 30, Distributions: []models.Distribution{
						{AccountID: "savings", Amount: 30},
					}},
				},
			},
		},
		CurrentMonthID: "month_2026_6",
		Goals: []models.Goal{
			{ID: "goal_small", Title: "Headphones", TargetAmount: 200},
			{ID: "goal_big", Title: "Car", TargetAmount: 100000},
			{ID: "goal_done", Title: "Bike", TargetAmount: 100, IsCompleted: true},
		},
	}
}

func TestCanDeleteAccount(t *testing.T) {
	state := guardState()

	tests := []struct {
		name      string
		accountID string
		wantErr   bool
	}{
		{"referenced by expense and transfer", "checking", true},
		{"referenced by income distribution", "savings", true},
		{"unreferenced", "unused", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanDeleteAccount(state, tc.accountID)
			if tc.wantErr {
				require.Error(t, err)
				var rerr *ledgererror.ReferenceError
				assert.ErrorAs(t, err, &rerr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanDeleteAccount_Unknown(t *testing.T) {
	err := CanDeleteAccount(guardState(), "nope")
	var nerr *ledgererror.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestCanDeleteCategory(t *testing.T) {
	state := guardState()

	assert.Error(t, CanDeleteCategory(state, "groceries"))
	assert.NoError(t, CanDeleteCategory(state, "idle"))

	var nerr *ledgererror.NotFoundError
	assert.ErrorAs(t, CanDeleteCategory(state, "nope"), &nerr)
}

func TestCanCompleteGoal(t *testing.T) {
	state := guardState()

	// savings ending balance: 400 + 30 income + 50 transfer in = 480
	assert.NoError(t, CanCompleteGoal(state, "goal_small"))
	assert.Error(t, CanCompleteGoal(state, "goal_big"))
	assert.Error(t, CanCompleteGoal(state, "goal_done"))

	var nerr *ledgererror.NotFoundError
	assert.ErrorAs(t, CanCompleteGoal(state, "nope"), &nerr)
}

func TestCanCompleteGoal_NoSavingsAccount(t *testing.T) {
	state := guardState()
	for i := range state.Accounts {
		state.Accounts[i].IsSavings = false
	}

	assert.Error(t, CanCompleteGoal(state, "goal_small"))
}
