package models

// Action is the closed set of state transitions accepted by the ledger
// reducer. Each variant carries its own payload; the marker method keeps
// the set closed so the reducer's type switch stays exhaustive.
type Action interface {
	isAction()
}

// SetCurrentMonth points the aggregate at another month. An unknown id is
// accepted as-is; readers already handle a dangling pointer.
type SetCurrentMonth struct {
	MonthID string
}

// AddIncome appends an income to the current month.
type AddIncome struct {
	Income Income
}

// AddExpense appends an expense to the current month.
type AddExpense struct {
	Expense Expense
}

// AddTransfer appends a transfer to the current month.
type AddTransfer struct {
	Transfer Transfer
}

// AddAccount inserts a new account.
type AddAccount struct {
	Account Account
}

// UpdateAccount replaces the account with the same id.
type UpdateAccount struct {
	Account Account
}

// DeleteAccount removes an account by id. The caller must have verified
// that no transaction in any month still references it.
type DeleteAccount struct {
	AccountID string
}

// AddCategory inserts a new category.
type AddCategory struct {
	Category Category
}

// UpdateCategory replaces the category with the same id.
type UpdateCategory struct {
	Category Category
}

// DeleteCategory removes a category by id. The caller must have verified
// that no expense in any month still references it.
type DeleteCategory struct {
	CategoryID string
}

// CreateNextMonth materializes the successor of the current month and
// makes it current. A no-op when the current month is missing or the
// successor already exists.
type CreateNextMonth struct{}

// DeleteIncome removes an income from the current month by id.
type DeleteIncome struct {
	IncomeID string
}

// DeleteExpense removes an expense from the current month by id.
type DeleteExpense struct {
	ExpenseID string
}

// DeleteTransfer removes a transfer from the current month by id.
type DeleteTransfer struct {
	TransferID string
}

// AddGoal inserts a new savings goal.
type AddGoal struct {
	Goal Goal
}

// UpdateGoal replaces the goal with the same id.
type UpdateGoal struct {
	Goal Goal
}

// DeleteGoal removes a goal by id.
type DeleteGoal struct {
	GoalID string
}

// CompleteGoal marks a goal completed and records the spend against the
// savings account in one transition, so no observer ever sees the expense
// without the completed flag or the other way around.
type CompleteGoal struct {
	GoalID        string
	CompletedDate string
	Expense       Expense
}

// CompleteGoalWithCategory is CompleteGoal for the first-ever completion,
// when the bookkeeping category for goal spends does not exist yet: the
// category insert rides in the same transition.
type CompleteGoalWithCategory struct {
	GoalID        string
	CompletedDate string
	Expense       Expense
	Category      Category
}

func (SetCurrentMonth) isAction()          {}
func (AddIncome) isAction()                {}
func (AddExpense) isAction()               {}
func (AddTransfer) isAction()              {}
func (AddAccount) isAction()               {}
func (UpdateAccount) isAction()            {}
func (DeleteAccount) isAction()            {}
func (AddCategory) isAction()              {}
func (UpdateCategory) isAction()           {}
func (DeleteCategory) isAction()           {}
func (CreateNextMonth) isAction()          {}
func (DeleteIncome) isAction()             {}
func (DeleteExpense) isAction()            {}
func (DeleteTransfer) isAction()           {}
func (AddGoal) isAction()                  {}
func (UpdateGoal) isAction()               {}
func (DeleteGoal) isAction()               {}
func (CompleteGoal) isAction()             {}
func (CompleteGoalWithCategory) isAction() {}
