package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/pkg/tui"
)

// NewRootCommand builds the schemadeck command tree
func NewRootCommand(version string) *cobra.Command {
	var (
		quiet   bool
		noColor bool
		yes     bool
	)

	root := &cobra.Command{
		Use:   "schemadeck [item]",
		Short: "Manage the structured-data schemas attached to content items",
		Long: `schemadeck keeps the schema.org entries of each content item as YAML files
under .schemadeck/items and lets you pick the primary entry, preview the
JSON-LD, and delete entries with a confirmation step.

Run 'schemadeck <item>' to open the interactive view for an item.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			cli.SetGlobalFlags(quiet, noColor, yes)
			output, _ := cmd.Flags().GetString("output")
			return cli.ValidateOutputFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			cc, err := projectContext(cmd)
			if err != nil {
				return err
			}
			ctrl, err := cc.OpenController(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer ctrl.Close()

			if err := tui.Run(cmd.Context(), ctrl, tui.Options{
				ShowIcons: cc.Config.UI.ShowIcons,
				Logger:    cc.Logger,
			}); err != nil {
				return fmt.Errorf("failed to start the terminal user interface: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Answer yes to confirmation prompts")

	root.AddCommand(
		NewInitCommand(),
		NewListCommand(),
		NewShowCommand(),
		NewPrimaryCommand(),
		NewDeleteCommand(),
		NewAddCommand(),
		NewExportCommand(),
		NewCopyCommand(),
		NewEditCommand(),
		NewVersionCommand(version),
	)

	return root
}

// projectContext loads the project in the working directory and fails when
// it has not been initialized
func projectContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	cc, err := cli.NewCommandContext(cmd.Context())
	if err != nil {
		return nil, err
	}
	if err := cc.ValidateProject(); err != nil {
		return nil, err
	}
	return cc, nil
}

func outputFormat(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString("output")
	return output
}
