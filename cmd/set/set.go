// Package set handles the balance, salary and bonus commands
package set

import (
	"fmt"
	"io"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/models"
	"fjacquet/budget-projector/internal/planner"

	"github.com/spf13/cobra"
)

// Field is a top-level amount of the scenario.
type Field string

// Settable fields.
const (
	FieldBalance Field = "balance"
	FieldSalary  Field = "salary"
	FieldBonus   Field = "bonus"
)

// Cmd represents the set command
var Cmd = &cobra.Command{
	Use:   "set",
	Short: "Set the starting balance, monthly salary or THR bonus",
}

func fieldCmd(field Field, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(field) + " <amount>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(root.GetContainer(), field, args[0], cmd.OutOrStdout())
		},
	}
}

func init() {
	Cmd.AddCommand(
		fieldCmd(FieldBalance, "Set the balance at the start of January"),
		fieldCmd(FieldSalary, "Set the salary received every month"),
		fieldCmd(FieldBonus, "Set the THR bonus received in March"),
	)
}

// Run parses amount and stores it in field.
func Run(c *container.Container, field Field, amount string, out io.Writer) error {
	value, err := models.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}

	var apply func(*planner.Planner, int64) error
	switch field {
	case FieldBalance:
		apply = (*planner.Planner).SetInitialBalance
	case FieldSalary:
		apply = (*planner.Planner).SetMonthlySalary
	case FieldBonus:
		apply = (*planner.Planner).SetTHRBonus
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}
	if err := apply(s.Planner, value); err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	fmt.Fprintf(out, "Set %s to %s\n", field, c.GetRenderer().Currency(value))
	return s.Commit(out, c.GetRenderer())
}
