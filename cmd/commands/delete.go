package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/controller"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <item> <key>",
		Short: "Delete a schema from an item",
		Long: `Permanently delete a schema from an item.

This action cannot be undone. Deleting the primary schema leaves the item
without a primary.

Examples:
  # Delete a schema (with confirmation)
  schemadeck delete blog-post schema-01hx...

  # Force delete without confirmation
  schemadeck delete blog-post schema-01hx... --force`,
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

			entry, _ := ctrl.ListEntries().Get(key)
			if _, err := ctrl.RequestDelete(cmd.Context(), key); err != nil {
				return err
			}

			if !force {
				prompt := fmt.Sprintf("Permanently delete %s '%s' from %s? This cannot be undone.", entry.Type, entry.DisplayTitle(), item)
				confirmed, err := cli.Confirm(prompt, false)
				if err != nil {
					ctrl.CancelDelete(key)
					return err
				}
				if !confirmed {
					ctrl.CancelDelete(key)
					cli.PrintInfo("Deletion cancelled")
					return nil
				}
			}

			outcome, err := ctrl.RequestDelete(cmd.Context(), key)
			if err != nil {
				if outcome == controller.DeleteRemoved {
					return fmt.Errorf("failed to save deletion of %s: %w", key, err)
				}
				return fmt.Errorf("failed to delete schema: %w", err)
			}
			if outcome != controller.DeleteRemoved {
				return fmt.Errorf("schema %s was not removed", key)
			}

			cli.PrintSuccess("Deleted %s: %s", entry.Type, key)
			if entry.Metadata.IsPrimary {
				cli.PrintWarning("%s no longer has a primary schema", item)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force deletion without confirmation")

	return cmd
}
