// Package wishlist handles the wishlist editing commands
package wishlist

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

// AddOptions describes a new wishlist item. Empty fields take the defaults
// of a new item.
type AddOptions struct {
	Name     string
	Price    string
	Month    string
	Disabled bool
}

// EditOptions lists the fields to change; nil fields are left alone.
type EditOptions struct {
	Name  *string
	Price *string
	Month *string
}

// ErrNothingToChange is returned by Edit when no field was given.
var ErrNothingToChange = errors.New("nothing to change, pass --name, --price or --month")

var (
	addOpts   AddOptions
	editName  string
	editPrice string
	editMonth string
)

// Cmd represents the wishlist command
var Cmd = &cobra.Command{
	Use:   "wishlist",
	Short: "List and edit one-off purchases",
	Long: `List and edit the wishlist: one-off purchases scheduled in a single month.
Items are addressed by ID or by their position in "wishlist list".
Every change is saved to the scenario file and followed by the new summary.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List wishlist items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return List(root.GetContainer(), cmd.OutOrStdout())
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a wishlist item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Add(root.GetContainer(), addOpts, cmd.OutOrStdout())
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <item>",
	Short: "Change the name, price or month of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts EditOptions
		if cmd.Flags().Changed("name") {
			opts.Name = &editName
		}
		if cmd.Flags().Changed("price") {
			opts.Price = &editPrice
		}
		if cmd.Flags().Changed("month") {
			opts.Month = &editMonth
		}
		return Edit(root.GetContainer(), args[0], opts, cmd.OutOrStdout())
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <item>",
	Short: "Remove a wishlist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Remove(root.GetContainer(), args[0], cmd.OutOrStdout())
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable <item>",
	Short: "Include an item in the projection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return SetEnabled(root.GetContainer(), args[0], true, cmd.OutOrStdout())
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <item>",
	Short: "Keep an item but leave it out of the projection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return SetEnabled(root.GetContainer(), args[0], false, cmd.OutOrStdout())
	},
}

var disableAllCmd = &cobra.Command{
	Use:   "disable-all",
	Short: "Disable every wishlist item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return DisableAll(root.GetContainer(), cmd.OutOrStdout())
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every wishlist item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Clear(root.GetContainer(), cmd.OutOrStdout())
	},
}

func init() {
	addCmd.Flags().StringVar(&addOpts.Name, "name", "", "Item name (default \""+models.DefaultWishlistName+"\")")
	addCmd.Flags().StringVar(&addOpts.Price, "price", "", "Price, e.g. 1500000 or \"Rp 1,500,000\"")
	addCmd.Flags().StringVar(&addOpts.Month, "month", "", "Month of the purchase (default December)")
	addCmd.Flags().BoolVar(&addOpts.Disabled, "disabled", false, "Add the item disabled")

	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editPrice, "price", "", "New price")
	editCmd.Flags().StringVar(&editMonth, "month", "", "New month")

	Cmd.AddCommand(listCmd, addCmd, editCmd, removeCmd, enableCmd, disableCmd, disableAllCmd, clearCmd)
}

// List prints the wishlist.
func List(c *container.Container, out io.Writer) error {
	if c == nil {
		return common.ErrNoContainer
	}
	s, err := common.OpenOrDefault(c)
	if err != nil {
		return err
	}
	fmt.Fprint(out, c.GetRenderer().WishlistTable(s.Planner.Configuration().WishlistItems))
	return nil
}

// Add appends an item built from opts.
func Add(c *container.Container, opts AddOptions, out io.Writer) error {
	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}

	item := models.WishlistItem{
		Name:    models.DefaultWishlistName,
		Price:   models.DefaultWishlistPrice,
		Month:   models.DefaultWishlistMonth,
		Enabled: !opts.Disabled,
	}
	if opts.Name != "" {
		item.Name = opts.Name
	}
	if opts.Price != "" {
		if item.Price, err = models.ParseAmount(opts.Price); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
	}
	if opts.Month != "" {
		if item.Month, err = models.ParseMonth(opts.Month); err != nil {
			return err
		}
	}

	id := s.Planner.AddWishlist(item)
	fmt.Fprintf(out, "Added wishlist item %s\n", id)
	return s.Commit(out, c.GetRenderer())
}

// Edit changes the fields of item set in opts.
func Edit(c *container.Container, item string, opts EditOptions, out io.Writer) error {
	if opts.Name == nil && opts.Price == nil && opts.Month == nil {
		return ErrNothingToChange
	}
	s, id, err := openItem(c, item)
	if err != nil {
		return err
	}

	var price int64
	if opts.Price != nil {
		if price, err = models.ParseAmount(*opts.Price); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
	}
	var month models.Month
	if opts.Month != nil {
		if month, err = models.ParseMonth(*opts.Month); err != nil {
			return err
		}
	}

	err = s.Planner.UpdateWishlist(id, func(w *models.WishlistItem) {
		if opts.Name != nil {
			w.Name = *opts.Name
		}
		if opts.Price != nil {
			w.Price = price
		}
		if opts.Month != nil {
			w.Month = month
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated wishlist item %s\n", id)
	return s.Commit(out, c.GetRenderer())
}

// Remove deletes item.
func Remove(c *container.Container, item string, out io.Writer) error {
	s, id, err := openItem(c, item)
	if err != nil {
		return err
	}
	if err := s.Planner.RemoveWishlist(id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed wishlist item %s\n", id)
	return s.Commit(out, c.GetRenderer())
}

// SetEnabled enables or disables item.
func SetEnabled(c *container.Container, item string, enabled bool, out io.Writer) error {
	s, id, err := openItem(c, item)
	if err != nil {
		return err
	}
	if err := s.Planner.UpdateWishlist(id, func(w *models.WishlistItem) { w.Enabled = enabled }); err != nil {
		return err
	}
	state := "Disabled"
	if enabled {
		state = "Enabled"
	}
	fmt.Fprintf(out, "%s wishlist item %s\n", state, id)
	return s.Commit(out, c.GetRenderer())
}

// DisableAll disables every item.
func DisableAll(c *container.Container, out io.Writer) error {
	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}
	n := s.Planner.DisableAllWishlist()
	fmt.Fprintf(out, "Disabled %d wishlist item(s)\n", n)
	return s.Commit(out, c.GetRenderer())
}

// Clear removes every item.
func Clear(c *container.Container, out io.Writer) error {
	s, err := common.OpenForEdit(c)
	if err != nil {
		return err
	}
	n := s.Planner.ClearWishlist()
	fmt.Fprintf(out, "Removed %d wishlist item(s)\n", n)
	return s.Commit(out, c.GetRenderer())
}

func openItem(c *container.Container, item string) (*common.Session, string, error) {
	s, err := common.OpenForEdit(c)
	if err != nil {
		return nil, "", err
	}
	id, err := common.ResolveID(item, common.WishlistIDs(s.Planner.Configuration()))
	if err != nil {
		return nil, "", fmt.Errorf("wishlist item %w", err)
	}
	return s, id, nil
}
