package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/view"
)

// ItemSummary represents one item in the item listing
type ItemSummary struct {
	Name    string `json:"name" yaml:"name"`
	Schemas int    `json:"schemas" yaml:"schemas"`
	Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// SchemaRow represents one schema in an item listing
type SchemaRow struct {
	Key     string `json:"key" yaml:"key"`
	Type    string `json:"type" yaml:"type"`
	Title   string `json:"title" yaml:"title"`
	Primary bool   `json:"primary" yaml:"primary"`
}

// ItemListing is the structured output of 'list <item>'
type ItemListing struct {
	Item      string      `json:"item" yaml:"item"`
	Gated     bool        `json:"gated" yaml:"gated"`
	ProNotice string      `json:"notice,omitempty" yaml:"notice,omitempty"`
	Schemas   []SchemaRow `json:"schemas" yaml:"schemas"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [item]",
		Short: "List items, or the schemas of one item",
		Long: `Without an argument, list every content item in the project. With an item
name, list that item's schemas in order.

Examples:
  schemadeck list
  schemadeck list blog-post
  schemadeck list blog-post -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := projectContext(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return listItems(cmd, cc)
			}
			return listSchemas(cmd, cc, args[0])
		},
	}
	return cmd
}

func listItems(cmd *cobra.Command, cc *cli.CommandContext) error {
	names, err := cc.Repo.ListItems()
	if err != nil {
		return err
	}

	items := make([]ItemSummary, 0, len(names))
	for _, name := range names {
		schemas, err := cc.Repo.ReadItem(name)
		if err != nil {
			return err
		}
		summary := ItemSummary{Name: name, Schemas: schemas.Len()}
		if primary, ok := schemas.Primary(); ok {
			summary.Primary = primary.Key
		}
		items = append(items, summary)
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cli.Stdout(), format, items)
	}

	if len(items) == 0 {
		cli.PrintInfo("No items found. Use 'schemadeck add <item> <type>' to create one.")
		return nil
	}
	table := cli.NewTableFormatter(cli.Stdout())
	table.Header("ITEM", "SCHEMAS", "PRIMARY")
	for _, it := range items {
		table.Row(it.Name, fmt.Sprint(it.Schemas), it.Primary)
	}
	table.Flush()
	return nil
}

func listSchemas(cmd *cobra.Command, cc *cli.CommandContext, item string) error {
	ctrl, err := cc.OpenController(cmd.Context(), item)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	snap := ctrl.Snapshot()
	listing := ItemListing{Item: item, Gated: snap.Gated(), Schemas: []SchemaRow{}}
	if listing.Gated {
		listing.ProNotice = view.ProNotice
	}
	for _, e := range snap.Schemas.Entries() {
		listing.Schemas = append(listing.Schemas, SchemaRow{
			Key:     e.Key,
			Type:    e.Type,
			Title:   e.DisplayTitle(),
			Primary: e.Metadata.IsPrimary,
		})
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cli.Stdout(), format, listing)
	}

	if len(listing.Schemas) == 0 {
		cli.PrintInfo("Item %s has no schemas", item)
		return nil
	}
	table := cli.NewTableFormatter(cli.Stdout())
	table.Header("KEY", "TYPE", "TITLE", "PRIMARY")
	for _, row := range listing.Schemas {
		table.Row(row.Key, row.Type, cli.TruncateString(row.Title, 40), cli.PrimaryMarker(row.Primary))
	}
	table.Flush()
	if listing.Gated {
		cli.PrintInfo("%s", view.ProNotice)
	}
	return nil
}
