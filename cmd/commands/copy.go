package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/composer"
	"github.com/pluqqy/schemadeck/pkg/models"
)

var writeClipboard = clipboard.WriteAll

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	var script bool

	cmd := &cobra.Command{
		Use:   "copy <item> [key]",
		Short: "Copy JSON-LD to the clipboard",
		Long: `Copy the JSON-LD of a whole item, or of one schema, to the system clipboard.

Examples:
  schemadeck copy blog-post
  schemadeck copy blog-post schema-01hx... --script`,
		Args:    cobra.RangeArgs(1, 2),
		Aliases: []string{"clip", "clipboard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			if err := cli.ValidateItemName(item); err != nil {
				return err
			}
			cc, err := projectContext(cmd)
			if err != nil {
				return err
			}
			schemas, err := cc.Repo.ReadItem(item)
			if err != nil {
				return err
			}

			var content, what string
			if len(args) == 2 {
				entry, ok := schemas.Get(args[1])
				if !ok {
					return fmt.Errorf("schema %s in %s: %w", args[1], item, models.ErrNotFound)
				}
				content, err = composer.ComposeEntry(entry)
				what = fmt.Sprintf("%s '%s'", entry.Type, entry.DisplayTitle())
			} else {
				content, err = composer.ComposeGraph(schemas)
				what = fmt.Sprintf("%d schemas of %s", schemas.Len(), item)
			}
			if err != nil {
				return err
			}
			if script {
				content = composer.ScriptTag(content)
			}

			if err := writeClipboard(content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			cli.PrintSuccess("Copied %s to clipboard", what)

			lines := strings.Split(content, "\n")
			cli.PrintInfo("Preview: %s", cli.TruncateString(strings.Join(lines[:min(len(lines), 3)], " "), 80))
			return nil
		},
	}

	cmd.Flags().BoolVar(&script, "script", false, "Wrap the document in a <script type=\"application/ld+json\"> tag")
	return cmd
}
