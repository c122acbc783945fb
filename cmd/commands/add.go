package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/examples"
	"github.com/pluqqy/schemadeck/pkg/models"
	"github.com/pluqqy/schemadeck/pkg/store"
	"github.com/pluqqy/schemadeck/pkg/view"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	var (
		title   string
		primary bool
	)

	cmd := &cobra.Command{
		Use:   "add <item> <type>",
		Short: "Add a schema to an item",
		Long: `Add a schema of the given schema.org type to an item, creating the item if
needed. Known types start from a template with placeholder properties. The
first schema of an item becomes primary; --primary on a populated item
requires the pro tier.

Examples:
  schemadeck add blog-post BlogPosting
  schemadeck add blog-post FAQPage --title "Reader questions"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, schemaType := args[0], args[1]
			if err := cli.ValidateItemName(item); err != nil {
				return err
			}
			if err := cli.ValidateSchemaType(schemaType); err != nil {
				return err
			}
			cc, err := projectContext(cmd)
			if err != nil {
				return err
			}

			existing, err := cc.Repo.ReadItem(item)
			if err != nil {
				return err
			}
			if store.IsGated(cc.Config.Pro, existing.Len()) {
				if primary {
					return fmt.Errorf("%s: add %s --primary: primary selection requires entitlement: %w",
						view.ProNotice, schemaType, models.ErrInvalidState)
				}
				cli.PrintWarning("%s", view.ProNotice)
			}

			entry := examples.NewEntry(schemaType, title)
			entry.Metadata.IsPrimary = existing.IsEmpty()
			added, err := cc.Repo.AddEntry(item, entry)
			if err != nil {
				return err
			}
			cli.PrintSuccess("Added %s to %s as %s", added.Type, item, added.Key)

			if primary && !added.Metadata.IsPrimary {
				ctrl, err := cc.OpenController(cmd.Context(), item)
				if err != nil {
					return err
				}
				defer ctrl.Close()
				if err := ctrl.SetPrimary(cmd.Context(), added.Key, ctrl.ListEntries()); err != nil {
					if errors.Is(err, models.ErrInvalidState) && ctrl.IsGated() {
						return fmt.Errorf("%s: %w", view.ProNotice, err)
					}
					return err
				}
				cli.PrintInfo("%s is now the primary schema of %s", added.Key, item)
			}

			if _, ok := examples.Lookup(added.Type); !ok {
				cli.PrintInfo("No template for %s; known types: %s", added.Type, strings.Join(examples.Types(), ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Display title (defaults to the type)")
	cmd.Flags().BoolVar(&primary, "primary", false, "Make the new schema primary (pro tier once the item has schemas)")

	return cmd
}
