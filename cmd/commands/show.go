package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/composer"
	"github.com/pluqqy/schemadeck/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	var script bool

	cmd := &cobra.Command{
		Use:   "show <item> <key>",
		Short: "Preview one schema as JSON-LD",
		Long: `Print the JSON-LD document for a single schema of an item.

Examples:
  schemadeck show blog-post schema-01hx...
  schemadeck show blog-post schema-01hx... --script`,
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

			if err := ctrl.SelectForPreview(key); err != nil {
				return err
			}
			entry, ok := ctrl.ListEntries().Get(ctrl.Session().EditingKey)
			if !ok {
				return fmt.Errorf("schema %s in %s: %w", key, item, models.ErrNotFound)
			}
			doc, err := composer.ComposeEntry(entry)
			if err != nil {
				return err
			}
			if script {
				doc = composer.ScriptTag(doc)
			}
			fmt.Fprintln(cli.Stdout(), doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&script, "script", false, "Wrap the document in a <script type=\"application/ld+json\"> tag")
	return cmd
}
