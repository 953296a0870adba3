package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID("expense")

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "expense", parts[0])
	assert.Len(t, parts[2], 8)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("account")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMonthID(t *testing.T) {
	assert.Equal(t, "month_2026_0", MonthID(2026, 0))
	assert.Equal(t, "month_2026_11", MonthID(2026, 11))
}

func TestAppState_CurrentMonth(t *testing.T) {
	state := AppState{
		Months:         []Month{{ID: "month_2026_0"}, {ID: "month_2026_1"}},
		CurrentMonthID: "month_2026_1",
	}

	month, ok := state.CurrentMonth()
	require.True(t, ok)
	assert.Equal(t, "month_2026_1", month.ID)

	state.CurrentMonthID = "month_1999_0"
	_, ok = state.CurrentMonth()
	assert.False(t, ok)

	state.CurrentMonthID = ""
	_, ok = state.CurrentMonth()
	assert.False(t, ok)
}

func TestAppState_SavingsAccount(t *testing.T) {
	state := AppState{
		Accounts: []Account{
			{ID: "a", Name: "Checking"},
			{ID: "b", Name: "Savings", IsSavings: true},
			{ID: "c", Name: "Vacation", IsSavings: true},
		},
	}

	account, ok := state.SavingsAccount()
	require.True(t, ok)
	assert.Equal(t, "b", account.ID)

	_, ok = AppState{}.SavingsAccount()
	assert.False(t, ok)
}

func TestAppState_Lookups(t *testing.T) {
	state := AppState{
		Accounts:   []Account{{ID: "a", Name: "Checking"}},
		Categories: []Category{{ID: "c", Name: "Groceries"}},
		Goals:      []Goal{{ID: "g", Title: "Bike"}},
	}

	_, ok := state.FindAccount("a")
	assert.True(t, ok)
	_, ok = state.FindAccount("nope")
	assert.False(t, ok)

	_, ok = state.FindCategory("c")
	assert.True(t, ok)
	_, ok = state.FindCategory("nope")
	assert.False(t, ok)

	_, ok = state.FindGoal("g")
	assert.True(t, ok)
	_, ok = state.FindGoal("nope")
	assert.False(t, ok)
}
