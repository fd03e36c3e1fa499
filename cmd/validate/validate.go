// Package validate handles the validate command
package validate

import (
	"fmt"
	"io"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a scenario file for invalid records",
	Long: `Check every record of the scenario file. Records whose amount cannot be
read are listed and make the command fail; wishlist months that are not
recognised are listed as notices, since those items are scheduled in January.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout())
	},
}

// Run normalizes the scenario file and reports every issue to out.
func Run(c *container.Container, out io.Writer) error {
	if c == nil {
		return common.ErrNoContainer
	}
	scenario, err := c.GetStore().Load()
	if err != nil {
		return err
	}

	// The result is complete even when a strict normalizer also returns an error.
	result, _ := c.GetNormalizer().Normalize(scenario.RawInput())
	common.WriteIssues(out, c.GetRenderer(), result)

	cfg := result.Configuration
	fmt.Fprintf(out, "%d recurring, %d wishlist, %d override(s) valid\n",
		len(cfg.RecurringItems), len(cfg.WishlistItems), len(cfg.Overrides))

	c.GetLogger().Debug("Validated scenario",
		logging.F(logging.FieldScenario, c.GetStore().File),
		logging.F("rejected", len(result.Rejected)),
		logging.F("fallbacks", len(result.Fallbacks)))

	if n := len(result.Rejected); n > 0 {
		return fmt.Errorf("%d invalid record(s) in %s", n, c.GetStore().File)
	}
	return nil
}
