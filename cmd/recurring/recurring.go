// Package recurring handles the recurring expense editing commands
package recurring

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/models"

	"github.com/spf13/cobra"
)

// AddOptions describes a new recurring expense.
type AddOptions struct {
	Description string
	Amount      string
	Inactive    bool
}

// ErrNothingToChange is returned by Edit when no field was given.
var ErrNothingToChange = errors.New("nothing to change, pass --description or --amount")

var (
	addOpts         AddOptions
	editDescription string
	editAmount      string
)

// Cmd represents the recurring command
var Cmd = &cobra.Command{
	Use:   "recurring",
	Short: "List and edit monthly recurring expenses",
	Long: `List and edit the recurring expenses paid every month. Their active total
is the recurring expense of each month that has no override. Items are
addressed by ID or by their position in "recurring list".`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recurring expenses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return List(root.GetContainer(), cmd.OutOrStdout())
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recurring expense",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Add(root.GetContainer(), addOpts, cmd.OutOrStdout())
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <item>",
	Short: "Change the description or amount of an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var description, amount *string
		if cmd.Flags().Changed("description") {
			description = &editDescription
		}
		if cmd.Flags().Changed("amount") {
			amount = &editAmount
		}
		return Edit(root.GetContainer(), args[0], description, amount, cmd.OutOrStdout())
	},
}

var setAmountCmd = &cobra.Command{
	Use:   "set-amount <item> <amount>",
	Short: "Change the monthly amount of an expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Edit(root.GetContainer(), args[0], nil, &args[1], cmd.OutOrStdout())
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <item>",
	Short: "Remove a recurring expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Remove(root.GetContainer(), args[0], cmd.OutOrStdout())
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate <item>",
	Short: "Count an expense in the monthly total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return SetActive(root.GetContainer(), args[0], true, cmd.OutOrStdout())
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <item>",
	Short: "Keep an expense but leave it out of the monthly total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return SetActive(root.GetContainer(), args[0], false, cmd.OutOrStdout())
	},
}

func init() {
	addCmd.Flags().StringVar(&addOpts.Description, "description", "", "Description (default \""+models.DefaultRecurringDescription+"\")")
	addCmd.Flags().StringVar(&addOpts.Amount, "amount", "", "Monthly amount, e.g. 250000 or \"Rp 250,000\"")
	addCmd.Flags().BoolVar(&addOpts.Inactive, "inactive", false, "Add the expense inactive")

	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().StringVar(&editAmount, "amount", "", "New monthly amount")

	Cmd.AddCommand(listCmd, addCmd, editCmd, setAmountCmd, removeCmd, activateCmd, deactivateCmd)
}

// List prints the recurring expenses and their active total.
func List(c *container.Container, out io.Writer) error {
	if c == nil {
		return common.ErrNoContainer
	}
	s, err := common.OpenOrDefault(c)
	if err != nil {
		return err
	}
	fmt.Fprint(out, c.GetRenderer().RecurringTable(s.Planner.Configuration().RecurringItems))
	return nil
}

// Add appends an expense built from opts.
func Add(c *container.Container, opts AddOptions, out io.Writer) error {
	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}

	item := models.RecurringExpenseItem{
		Description: models.DefaultRecurringDescription,
		Amount:      models.DefaultRecurringAmount,
		Active:      !opts.Inactive,
	}
	if opts.Description != "" {
		item.Description = opts.Description
	}
	if opts.Amount != "" {
		if item.Amount, err = models.ParseAmount(opts.Amount); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
	}

	id := s.Planner.AddRecurring(item)
	fmt.Fprintf(out, "Added recurring expense %s\n", id)
	return s.Commit(out, c.GetRenderer())
}

// Edit changes the description and/or amount of item.
func Edit(c *container.Container, item string, description, amount *string, out io.Writer) error {
	if description == nil && amount == nil {
		return ErrNothingToChange
	}
	s, id, err := openItem(c, item)
	if err != nil {
		return err
	}

	var value int64
	if amount != nil {
		if value, err = models.ParseAmount(*amount); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
	}

	err = s.Planner.UpdateRecurring(id, func(r *models.RecurringExpenseItem) {
		if description != nil {
			r.Description = *description
		}
		if amount != nil {
			r.Amount = value
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated recurring expense %s\n", id)
	return s.Commit(out, c.GetRenderer())
}

// Remove deletes item.
func Remove(c *container.Container, item string, out io.Writer) error {
	s, id, err := openItem(c, item)
	if err != nil {
		return err
	}
	if err := s.Planner.RemoveRecurring(id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed recurring expense %s\n", id)
	return s.Commit(out, c.GetRenderer())
}

// SetActive activates or deactivates item.
func SetActive(c *container.Container, item string, active bool, out io.Writer) error {
	s, id, err := openItem(c, item)
	if err != nil {
		return err
	}
	if err := s.Planner.UpdateRecurring(id, func(r *models.RecurringExpenseItem) { r.Active = active }); err != nil {
		return err
	}
	state := "Deactivated"
	if active {
		state = "Activated"
	}
	fmt.Fprintf(out, "%s recurring expense %s\n", state, id)
	return s.Commit(out, c.GetRenderer())
}

func openItem(c *container.Container, item string) (*common.Session, string, error) {
	s, err := common.OpenForEdit(c)
	if err != nil {
		return nil, "", err
	}
	id, err := common.ResolveID(item, common.RecurringIDs(s.Planner.Configuration()))
	if err != nil {
		return nil, "", fmt.Errorf("recurring expense %w", err)
	}
	return s, id, nil
}
