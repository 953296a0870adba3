// Package goal handles savings goal commands
package goal

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/spf13/cobra"
)

// goalCategoryName is the bookkeeping category goal spends are filed
// under, created on first completion if it does not exist.
const goalCategoryName = "Goal"

var (
	title        string
	targetAmount float64
	dueDate      string
	id           string
)

// Cmd represents the goal command
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new savings goal",
	RunE:  addFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an active goal",
	RunE:  updateFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a goal",
	RunE:  deleteFunc,
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete a goal, spending its target from the savings account",
	Long: `Complete a savings goal. Requires total savings to cover the target
amount. Completion is recorded together with an expense of the target
amount against the savings account, in one transition. A completed goal
cannot be reactivated.`,
	RunE: completeFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().StringVarP(&title, "title", "n", "", "Goal title")
	addCmd.Flags().Float64VarP(&targetAmount, "target", "a", 0, "Target amount")
	addCmd.Flags().StringVarP(&dueDate, "due", "u", "", "Due date")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("target")

	updateCmd.Flags().StringVar(&id, "id", "", "Goal id")
	updateCmd.Flags().StringVarP(&title, "title", "n", "", "Goal title")
	updateCmd.Flags().Float64VarP(&targetAmount, "target", "a", 0, "Target amount")
	updateCmd.Flags().StringVarP(&dueDate, "due", "u", "", "Due date")
	_ = updateCmd.MarkFlagRequired("id")

	deleteCmd.Flags().StringVar(&id, "id", "", "Goal id")
	_ = deleteCmd.MarkFlagRequired("id")

	completeCmd.Flags().StringVar(&id, "id", "", "Goal id")
	_ = completeCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd, updateCmd, deleteCmd, completeCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	goal := models.Goal{
		ID:           models.NewID("goal"),
		Title:        title,
		TargetAmount: targetAmount,
		DueDate:      dueDate,
		CreatedDate:  time.Now().Format(dateutils.DateLayoutISO),
	}
	if err := validation.ValidateGoal(goal); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.AddGoal{Goal: goal})
	root.Log.WithField("id", goal.ID).Infof("Added goal '%s'", goal.Title)
	return nil
}

func updateFunc(cmd *cobra.Command, args []string) error {
	existing, ok := root.Ledger.State().FindGoal(id)
	if !ok {
		return &ledgererror.NotFoundError{Entity: "goal", ID: id}
	}
	// Completion is terminal; the edit path must not touch a completed goal.
	if existing.IsCompleted {
		return &ledgererror.ValidationError{Entity: "goal", Reason: "completed goals cannot be edited"}
	}

	if cmd.Flags().Changed("title") {
		existing.Title = title
	}
	if cmd.Flags().Changed("target") {
		existing.TargetAmount = targetAmount
	}
	if cmd.Flags().Changed("due") {
		existing.DueDate = dueDate
	}
	if err := validation.ValidateGoal(existing); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.UpdateGoal{Goal: existing})
	root.Log.Infof("Updated goal '%s'", existing.Title)
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	if _, ok := root.Ledger.State().FindGoal(id); !ok {
		return &ledgererror.NotFoundError{Entity: "goal", ID: id}
	}

	root.Ledger.Dispatch(models.DeleteGoal{GoalID: id})
	root.Log.Infof("Deleted goal %s", id)
	return nil
}

func completeFunc(cmd *cobra.Command, args []string) error {
	state := root.Ledger.State()
	if err := validation.CanCompleteGoal(state, id); err != nil {
		return err
	}

	goal, _ := state.FindGoal(id)
	savingsAccount, _ := state.SavingsAccount()

	categoryID := ""
	for _, category := range state.Categories {
		if strings.EqualFold(category.Name, goalCategoryName) {
			categoryID = category.ID
			break
		}
	}

	newCategory := models.Category{}
	if categoryID == "" {
		newCategory = models.Category{
			ID:    models.NewID("category"),
			Name:  goalCategoryName,
			Color: "#9333ea",
		}
		categoryID = newCategory.ID
	}

	now := time.Now()
	expense := models.Expense{
		ID:          models.NewID("expense"),
		Amount:      goal.TargetAmount,
		Description: fmt.Sprintf("Goal completed: %s", goal.Title),
		Date:        now.Format(dateutils.DateLayoutISO),
		CategoryID:  categoryID,
		AccountID:   savingsAccount.ID,
	}

	completedDate := now.Format(dateutils.DateLayoutISO)
	if newCategory.ID == "" {
		root.Ledger.Dispatch(models.CompleteGoal{
			GoalID:        goal.ID,
			CompletedDate: completedDate,
			Expense:       expense,
		})
	} else {
		root.Ledger.Dispatch(models.CompleteGoalWithCategory{
			GoalID:        goal.ID,
			CompletedDate: completedDate,
			Expense:       expense,
			Category:      newCategory,
		})
	}

	root.Log.Infof("Completed goal '%s', spent %.2f from %s",
		goal.Title, goal.TargetAmount, savingsAccount.Name)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	state := root.Ledger.State()
	if len(state.Goals) == 0 {
		fmt.Println("No goals yet")
		return nil
	}

	totalSavings := ledger.TotalSavings(state)
	for _, goal := range state.Goals {
		if goal.IsCompleted {
			fmt.Printf("%-30s %10.2f  completed %s  [%s]\n",
				goal.Title, goal.TargetAmount, goal.CompletedDate, goal.ID)
			continue
		}
		progress := totalSavings / goal.TargetAmount * 100
		if progress > 100 {
			progress = 100
		}
		fmt.Printf("%-30s %10.2f  %5.1f%%  [%s]\n",
			goal.Title, goal.TargetAmount, progress, goal.ID)
	}
	return nil
}
