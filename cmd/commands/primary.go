package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/models"
	"github.com/pluqqy/schemadeck/pkg/view"
)

// NewPrimaryCommand creates the primary command
func NewPrimaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primary <item> <key>",
		Short: "Make one schema the primary schema of an item",
		Long: `Mark a schema as primary and clear the flag on every other schema of the
item. Requires the pro tier once an item has schemas.

Examples:
  schemadeck primary blog-post schema-01hx...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, key := args[0], args[1]
			if err := cli.ValidateSchemaKey(key); err != nil {
				return err
			}
			cc, err := projectContext(cmd)
			if err != nil {
				return err
			}
			ctrl, err := cc.OpenController(cmd.Context(), item)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			if err := ctrl.SetPrimary(cmd.Context(), key, ctrl.ListEntries()); err != nil {
				if errors.Is(err, models.ErrInvalidState) && ctrl.IsGated() {
					return fmt.Errorf("%s: %w", view.ProNotice, err)
				}
				return err
			}

			entry, _ := ctrl.ListEntries().Get(key)
			cli.PrintSuccess("%s (%s) is now the primary schema of %s", entry.DisplayTitle(), key, item)
			return nil
		},
	}
	return cmd
}
