// Package models defines the ledger entities and the root aggregate shared
// across the application.
package models

// Account is a place money lives (checking, cash, savings envelope).
// An account carries no stored balance: balances are always derived by
// replaying a month's transactions, so anything persisted on the entity
// would only ever be a stale cache.
type Account struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	IsSavings bool   `json:"isSavings" yaml:"isSavings"`
}

// Category labels expenses (groceries, rent, ...).
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// Goal is a savings target. Completion is a one-way transition: once
// IsCompleted is set the goal never returns to the active state.
type Goal struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	TargetAmount  float64 `json:"targetAmount" yaml:"targetAmount"`
	DueDate       string  `json:"dueDate" yaml:"dueDate"`
	CreatedDate   string  `json:"createdDate" yaml:"createdDate"`
	IsCompleted   bool    `json:"isCompleted" yaml:"isCompleted"`
	CompletedDate string  `json:"completedDate,omitempty" yaml:"completedDate,omitempty"`
}

// Distribution is a split of a single income event into one account.
type Distribution struct {
	AccountID string  `json:"accountId" yaml:"accountId"`
	Amount    float64 `json:"amount" yaml:"amount"`
}

// Income is money entering the ledger, split across accounts via
// distributions. The distribution amounts must sum to Amount; that
// invariant is enforced at the boundary, before an action is built.
type Income struct {
	ID            string         `json:"id" yaml:"id"`
	Amount        float64        `json:"amount" yaml:"amount"`
	Description   string         `json:"description" yaml:"description"`
	Date          string         `json:"date" yaml:"date"`
	Distributions []Distribution `json:"distributions" yaml:"distributions"`
}

// Expense is money leaving the ledger from a single account.
type Expense struct {
	ID          string  `json:"id" yaml:"id"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Description string  `json:"description" yaml:"description"`
	Date        string  `json:"date" yaml:"date"`
	CategoryID  string  `json:"categoryId" yaml:"categoryId"`
	AccountID   string  `json:"accountId" yaml:"accountId"`
}

// Transfer moves money between two accounts. It is balance-neutral for
// the ledger as a whole and is excluded from income/expense totals.
type Transfer struct {
	ID            string  `json:"id" yaml:"id"`
	Amount        float64 `json:"amount" yaml:"amount"`
	Description   string  `json:"description" yaml:"description"`
	Date          string  `json:"date" yaml:"date"`
	FromAccountID string  `json:"fromAccountId" yaml:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId" yaml:"toAccountId"`
}

// Balance is an account's amount snapshot, used for starting balances.
type Balance struct {
	AccountID string  `json:"accountId" yaml:"accountId"`
	Amount    float64 `json:"amount" yaml:"amount"`
}

// Month is one calendar month of ledger activity. Months form a
// chronological chain through (Year, Month) ordering rather than explicit
// links. StartingBalances is written once, at month-creation time, from the
// predecessor's computed ending balances; later edits to the predecessor do
// not flow into an already-created month.
type Month struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Year             int        `json:"year" yaml:"year"`
	Month            int        `json:"month" yaml:"month"` // 0-11
	Incomes          []Income   `json:"incomes" yaml:"incomes"`
	Expenses         []Expense  `json:"expenses" yaml:"expenses"`
	Transfers        []Transfer `json:"transfers" yaml:"transfers"`
	StartingBalances []Balance  `json:"startingBalances" yaml:"startingBalances"`
}

// AppState is the root aggregate: the whole ledger plus the pointer to the
// month currently being viewed and edited. CurrentMonthID may dangle (or be
// empty); readers treat that as "no month selected", never as an error.
type AppState struct {
	Accounts       []Account  `json:"accounts" yaml:"accounts"`
	Categories     []Category `json:"categories" yaml:"categories"`
	Months         []Month    `json:"months" yaml:"months"`
	CurrentMonthID string     `json:"currentMonthId" yaml:"currentMonthId"`
	Goals          []Goal     `json:"goals" yaml:"goals"`
}

// CurrentMonth returns the month referenced by CurrentMonthID, or false
// when the pointer is empty or dangling.
func (s AppState) CurrentMonth() (Month, bool) {
	for _, m := range s.Months {
		if m.ID == s.CurrentMonthID {
			return m, true
		}
	}
	return Month{}, false
}

// FindAccount returns the account with the given id, or false.
func (s AppState) FindAccount(id string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// FindCategory returns the category with the given id, or false.
func (s AppState) FindCategory(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindGoal returns the goal with the given id, or false.
func (s AppState) FindGoal(id string) (Goal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// SavingsAccount returns the first account flagged as savings, or false
// when none exists. Goal completion spends from this account.
func (s AppState) SavingsAccount() (Account, bool) {
	for _, a := range s.Accounts {
		if a.IsSavings {
			return a, true
		}
	}
	return Account{}, false
}
