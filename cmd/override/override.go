// Package override handles the per-month recurring expense overrides
package override

import (
	"fmt"
	"io"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the override command
var Cmd = &cobra.Command{
	Use:   "override",
	Short: "Replace the recurring expense of single months",
	Long: `An override replaces the itemized recurring total of one month with a
fixed amount. An amount of zero keeps the month on its itemized total.
Months are accepted in English or Indonesian, e.g. "March", "Maret" or "mar".`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return List(root.GetContainer(), cmd.OutOrStdout())
	},
}

var setCmd = &cobra.Command{
	Use:   "set <month> <amount>",
	Short: "Set the recurring expense of a month",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Set(root.GetContainer(), args[0], args[1], cmd.OutOrStdout())
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear [month]",
	Short: "Remove the override of a month, or all overrides",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		return Clear(root.GetContainer(), month, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.AddCommand(listCmd, setCmd, clearCmd)
}

// List prints the overrides in month order.
func List(c *container.Container, out io.Writer) error {
	if c == nil {
		return common.ErrNoContainer
	}
	s, err := common.OpenOrDefault(c)
	if err != nil {
		return err
	}
	fmt.Fprint(out, c.GetRenderer().OverrideTable(s.Planner.Configuration().Overrides))
	return nil
}

// Set stores an override for month.
func Set(c *container.Container, month, amount string, out io.Writer) error {
	m, err := models.ParseMonth(month)
	if err != nil {
		return err
	}
	value, err := models.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}
	if err := s.Planner.SetOverride(models.MonthlyOverride{Month: m, Amount: value}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Set %s recurring expense to %s\n",
		m.Label(c.GetRenderer().Locale()), c.GetRenderer().Currency(value))
	return s.Commit(out, c.GetRenderer())
}

// Clear removes the override of month, or every override when month is empty.
func Clear(c *container.Container, month string, out io.Writer) error {
	var m models.Month
	if month != "" {
		var err error
		if m, err = models.ParseMonth(month); err != nil {
			return err
		}
	}

	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}
	if m.IsValid() {
		s.Planner.ClearOverride(m)
		fmt.Fprintf(out, "Cleared override of %s\n", m.Label(c.GetRenderer().Locale()))
	} else {
		s.Planner.ClearOverrides()
		fmt.Fprintln(out, "Cleared all overrides")
	}
	return s.Commit(out, c.GetRenderer())
}
