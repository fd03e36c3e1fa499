// Package initialize handles the init command
package initialize

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/budget-projector/cmd/common"
	"fjacquet/budget-projector/cmd/root"
	"fjacquet/budget-projector/internal/container"
	"fjacquet/budget-projector/internal/logging"
	"fjacquet/budget-projector/internal/store"

	"github.com/spf13/cobra"
)

// ErrScenarioExists is returned when init would overwrite a scenario.
var ErrScenarioExists = errors.New("scenario file already exists, use --force to overwrite it")

var force bool

// Cmd represents the init command
var Cmd = &cobra.Command{
	Use:   "init",
	Short: "Create a scenario file with the default budget",
	Long: `Create a scenario file seeded with the default budget: the starting
balance, salary and THR bonus, two recurring expenses and four wishlist items.
The file format follows the extension of --scenario.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), force, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scenario file")
}

// Run writes the default scenario to the configured scenario file.
func Run(c *container.Container, force bool, out io.Writer) error {
	if c == nil {
		return common.ErrNoContainer
	}
	st := c.GetStore()
	if st.Exists() && !force {
		return fmt.Errorf("%s: %w", st.File, ErrScenarioExists)
	}

	if err := st.Save(store.Default()); err != nil {
		return err
	}
	c.GetLogger().Info("Created scenario file", logging.F(logging.FieldScenario, st.File))
	fmt.Fprintf(out, "Created %s\n", st.File)
	return nil
}
