// Package category handles expense category management commands
package category

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	name  string
	color string
	id    string
)

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage expense categories",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new category",
	RunE:  addFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing category",
	RunE:  updateFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a category that no expense references",
	RunE:  deleteFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Category name")
	addCmd.Flags().StringVarP(&color, "color", "c", "#16a34a", "Display color")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringVar(&id, "id", "", "Category id")
	updateCmd.Flags().StringVarP(&name, "name", "n", "", "Category name")
	updateCmd.Flags().StringVarP(&color, "color", "c", "", "Display color")
	_ = updateCmd.MarkFlagRequired("id")

	deleteCmd.Flags().StringVar(&id, "id", "", "Category id")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd, updateCmd, deleteCmd, listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	category := models.Category{
		ID:    models.NewID("category"),
		Name:  name,
		Color: color,
	}
	if err := validation.ValidateCategory(category); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.AddCategory{Category: category})
	root.Log.WithField("id", category.ID).Infof("Added category '%s'", category.Name)
	return nil
}

func updateFunc(cmd *cobra.Command, args []string) error {
	existing, ok := root.Ledger.State().FindCategory(id)
	if !ok {
		return &ledgererror.NotFoundError{Entity: "category", ID: id}
	}

	if cmd.Flags().Changed("name") {
		existing.Name = name
	}
	if cmd.Flags().Changed("color") {
		existing.Color = color
	}
	if err := validation.ValidateCategory(existing); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.UpdateCategory{Category: existing})
	root.Log.Infof("Updated category '%s'", existing.Name)
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	if err := validation.CanDeleteCategory(root.Ledger.State(), id); err != nil {
		return err
	}

	root.Ledger.Dispatch(models.DeleteCategory{CategoryID: id})
	root.Log.Infof("Deleted category %s", id)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	state := root.Ledger.State()
	if len(state.Categories) == 0 {
		fmt.Println("No categories yet")
		return nil
	}
	for _, category := range state.Categories {
		fmt.Printf("%-30s %s  [%s]\n", category.Name, category.Color, category.ID)
	}
	return nil
}
