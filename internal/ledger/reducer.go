package ledger

import "fjacquet/finance-tracker/internal/models"

// Apply is the single transition function over the root aggregate. It is
// pure and total: every action variant is handled, modified collections
// are rebuilt rather than mutated in place, and anything that cannot apply
// (for example a transaction action with no current month selected)
// returns the state unchanged.
//
// Apply trusts its input. Validation and referential-integrity checks
// happen at the boundary, in the validation package, before an action is
// ever constructed.
func Apply(s models.AppState, action models.Action) models.AppState {
	switch a := action.(type) {
	case models.SetCurrentMonth:
		s.CurrentMonthID = a.MonthID
		return s

	case models.AddIncome:
		return updateCurrentMonth(s, func(m models.Month) models.Month {
			m.Incomes = appendIncome(m.Incomes, a.Income)
			return m
		})

	case models.AddExpense:
		return updateCurrentMonth(s, func(m models.Month) models.Month {
			m.Expenses = appendExpense(m.Expenses, a.Expense)
			return m
		})

	case models.AddTransfer:
		return updateCurrentMonth(s, func(m models.Month) models.Month {
			m.Transfers = appendTransfer(m.Transfers, a.Transfer)
			return m
		})

	case models.DeleteIncome:
		return updateCurrentMonth(s, func(m models.Month) models.Month {
			incomes := make([]models.Income, 0, len(m.Incomes))
			for _, income := range m.Incomes {
				if income.ID != a.IncomeID {
					incomes = append(incomes, income)
				}
			}
			m.Incomes = incomes
			return m
		})

	case models.DeleteExpense:
		return updateCurrentMonth(s, func(m models.Month) models.Month {
			expenses := make([]models.Expense, 0, len(m.Expenses))
			for _, expense := range m.Expenses {
				if expense.ID != a.ExpenseID {
					expenses = append(expenses, expense)
				}
			}
			m.Expenses = expenses
			return m
		})

	case models.DeleteTransfer:
		return updateCurrentMonth(s, func(m models.Month) models.Month {
			transfers := make([]models.Transfer, 0, len(m.Transfers))
			for _, transfer := range m.Transfers {
				if transfer.ID != a.TransferID {
					transfers = append(transfers, transfer)
				}
			}
			m.Transfers = transfers
			return m
		})

	case models.AddAccount:
		accounts := make([]models.Account, len(s.Accounts), len(s.Accounts)+1)
		copy(accounts, s.Accounts)
		s.Accounts = append(accounts, a.Account)
		return s

	case models.UpdateAccount:
		accounts := make([]models.Account, len(s.Accounts))
		for i, account := range s.Accounts {
			if account.ID == a.Account.ID {
				accounts[i] = a.Account
			} else {
				accounts[i] = account
			}
		}
		s.Accounts = accounts
		return s

	case models.DeleteAccount:
		accounts := make([]models.Account, 0, len(s.Accounts))
		for _, account := range s.Accounts {
			if account.ID != a.AccountID {
				accounts = append(accounts, account)
			}
		}
		s.Accounts = accounts
		return s

	case models.AddCategory:
		s.Categories = appendCategory(s.Categories, a.Category)
		return s

	case models.UpdateCategory:
		categories := make([]models.Category, len(s.Categories))
		for i, category := range s.Categories {
			if category.ID == a.Category.ID {
				categories[i] = a.Category
			} else {
				categories[i] = category
			}
		}
		s.Categories = categories
		return s

	case models.DeleteCategory:
		categories := make([]models.Category, 0, len(s.Categories))
		for _, category := range s.Categories {
			if category.ID != a.CategoryID {
				categories = append(categories, category)
			}
		}
		s.Categories = categories
		return s

	case models.CreateNextMonth:
		return CreateNextMonth(s)

	case models.AddGoal:
		goals := make([]models.Goal, len(s.Goals), len(s.Goals)+1)
		copy(goals, s.Goals)
		s.Goals = append(goals, a.Goal)
		return s

	case models.UpdateGoal:
		s.Goals = replaceGoal(s.Goals, a.Goal)
		return s

	case models.DeleteGoal:
		goals := make([]models.Goal, 0, len(s.Goals))
		for _, goal := range s.Goals {
			if goal.ID != a.GoalID {
				goals = append(goals, goal)
			}
		}
		s.Goals = goals
		return s

	case models.CompleteGoal:
		return completeGoal(s, a.GoalID, a.CompletedDate, a.Expense)

	case models.CompleteGoalWithCategory:
		// Guard against the category having appeared since the action was
		// built; a duplicate insert would orphan one of the two.
		if _, exists := s.FindCategory(a.Category.ID); !exists {
			s.Categories = appendCategory(s.Categories, a.Category)
		}
		return completeGoal(s, a.GoalID, a.CompletedDate, a.Expense)

	default:
		return s
	}
}

// completeGoal performs the combined transition: flag the goal completed
// and append the spend to the current month, atomically from the caller's
// point of view because both land in the same returned aggregate.
func completeGoal(s models.AppState, goalID, completedDate string, expense models.Expense) models.AppState {
	goal, ok := s.FindGoal(goalID)
	if !ok {
		return s
	}
	goal.IsCompleted = true
	goal.CompletedDate = completedDate
	s.Goals = replaceGoal(s.Goals, goal)

	return updateCurrentMonth(s, func(m models.Month) models.Month {
		m.Expenses = appendExpense(m.Expenses, expense)
		return m
	})
}

// updateCurrentMonth rebuilds the months slice with fn applied to the
// current month. No current month means no change.
func updateCurrentMonth(s models.AppState, fn func(models.Month) models.Month) models.AppState {
	if _, ok := s.CurrentMonth(); !ok {
		return s
	}

	months := make([]models.Month, len(s.Months))
	for i, m := range s.Months {
		if m.ID == s.CurrentMonthID {
			months[i] = fn(m)
		} else {
			months[i] = m
		}
	}
	s.Months = months
	return s
}

func appendIncome(incomes []models.Income, income models.Income) []models.Income {
	out := make([]models.Income, len(incomes), len(incomes)+1)
	copy(out, incomes)
	return append(out, income)
}

func appendExpense(expenses []models.Expense, expense models.Expense) []models.Expense {
	out := make([]models.Expense, len(expenses), len(expenses)+1)
	copy(out, expenses)
	return append(out, expense)
}

func appendTransfer(transfers []models.Transfer, transfer models.Transfer) []models.Transfer {
	out := make([]models.Transfer, len(transfers), len(transfers)+1)
	copy(out, transfers)
	return append(out, transfer)
}

func appendCategory(categories []models.Category, category models.Category) []models.Category {
	out := make([]models.Category, len(categories), len(categories)+1)
	copy(out, categories)
	return append(out, category)
}

func replaceGoal(goals []models.Goal, goal models.Goal) []models.Goal {
	out := make([]models.Goal, len(goals))
	for i, g := range goals {
		if g.ID == goal.ID {
			out[i] = goal
		} else {
			out[i] = g
		}
	}
	return out
}
