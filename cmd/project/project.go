// Package project handles the projection command
package project

import (
	"bytes"
	"io"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/export"
	"fjacquet/budget-projector/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the project command
var Cmd = &cobra.Command{
	Use:   "project",
	Short: "Project the budget over the year",
	Long: `Project the scenario over January to December and print the ledger.

The default table format draws summary cards, a stacked expense chart, a
balance sparkline and the monthly table. The csv format writes the twelve
ledger rows; json, yaml and xml write the ledger together with its summary.
Records that could not be read are reported on stderr and left out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), root.SharedFlags.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Run projects the configured scenario and writes it in the configured
// output format to output, or to out when output is empty.
func Run(c *container.Container, output string, out, errOut io.Writer) error {
	if c == nil {
		return common.ErrNoContainer
	}
	logger := c.GetLogger()

	s, err := common.OpenOrDefault(c)
	if err != nil {
		return err
	}
	common.WriteIssues(errOut, c.GetRenderer(), s.Result)

	ledger := s.Planner.Ledger()
	summary := s.Planner.Summary()
	format := c.GetConfig().Output.Format
	locale := c.GetRenderer().Locale()

	logger.Debug("Projecting scenario",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldBalance, summary.FinalBalance))

	var data []byte
	switch format {
	case "table":
		data = []byte(c.GetRenderer().Dashboard(s.Title(), ledger, summary) + "\n")
	case "csv":
		if output != "" {
			return c.GetExporter().WriteCSVFile(output, ledger, locale)
		}
		var buf bytes.Buffer
		if err := c.GetExporter().WriteCSV(&buf, ledger, locale); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		data, err = c.GetExporter().GenerateReport(export.NewReport(s.Title(), ledger, summary), format)
		if err != nil {
			return err
		}
	}

	return common.WriteOutput(output, data, out, logger)
}
