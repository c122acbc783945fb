package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/models"
)

var openInEditor = func(path string) error {
	return cli.NewEditorLauncher().OpenFile(path)
}

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <item>",
		Short: "Open an item file in $EDITOR",
		Long: `Open the YAML file of an item in your editor, creating it if needed. The
file is parsed again when the editor exits.

Examples:
  EDITOR="code --wait" schemadeck edit blog-post`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			if err := cli.ValidateItemName(item); err != nil {
				return err
			}
			cc, err := projectContext(cmd)
			if err != nil {
				return err
			}
			if !cc.Repo.ItemExists(item) {
				if err := cc.Repo.WriteItem(item, models.Collection{}); err != nil {
					return err
				}
				cli.PrintInfo("Created empty item %s", item)
			}

			if err := openInEditor(cc.Repo.ItemPath(item)); err != nil {
				return err
			}

			schemas, err := cc.Repo.ReadItem(item)
			if err != nil {
				return fmt.Errorf("%s is no longer valid: %w", cc.Repo.ItemPath(item), err)
			}
			if n := schemas.PrimaryCount(); n > 1 {
				cli.PrintWarning("%s has %d primary schemas; run 'schemadeck primary %s <key>' to fix", item, n, item)
			}
			cli.PrintSuccess("Saved %s (%d schemas)", item, schemas.Len())
			return nil
		},
	}
	return cmd
}
