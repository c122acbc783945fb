package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/composer"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		script  bool
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "export <item>",
		Short: "Export every schema of an item as one JSON-LD graph",
		Long: `Compose all schemas of an item into a single JSON-LD @graph document,
primary schema first.

Examples:
  schemadeck export blog-post
  schemadeck export blog-post --script -f public/blog-post.jsonld.html`,
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
			schemas, err := cc.Repo.ReadItem(item)
			if err != nil {
				return err
			}
			doc, err := composer.ComposeGraph(schemas)
			if err != nil {
				return fmt.Errorf("export %s: %w", item, err)
			}
			if script {
				doc = composer.ScriptTag(doc)
			}

			if outFile == "" {
				fmt.Fprintln(cli.Stdout(), doc)
				return nil
			}
			if err := os.WriteFile(outFile, []byte(doc+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			cli.PrintSuccess("Exported %d schemas of %s to %s", schemas.Len(), item, outFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&script, "script", false, "Wrap the document in a <script type=\"application/ld+json\"> tag")
	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write to a file instead of stdout")

	return cmd
}
