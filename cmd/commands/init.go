package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/schemadeck/internal/cli"
	"github.com/pluqqy/schemadeck/internal/config"
	"github.com/pluqqy/schemadeck/pkg/examples"
	"github.com/pluqqy/schemadeck/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var (
		withExamples bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new schemadeck project",
		Long: `Creates the .schemadeck folder structure and a default config.yaml in the
current directory.

Examples:
  # Create an empty project
  schemadeck init

  # Create a project with example items
  schemadeck init --examples`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cli.PrintInfo("Initializing schemadeck project in %s...", cwd)

			if err := files.InitProjectStructure(cwd); err != nil {
				return err
			}
			cli.PrintSuccess("Created %s folder structure", files.ProjectDir)

			repo := files.NewRepository(cwd, nil)
			if _, err := os.Stat(config.Path(repo.ProjectPath())); os.IsNotExist(err) {
				if err := config.Save(repo.ProjectPath(), config.Default()); err != nil {
					return err
				}
				cli.PrintSuccess("Wrote %s/%s", files.ProjectDir, files.ConfigFile)
			}

			if withExamples {
				for _, set := range examples.GetExamples("all") {
					for _, item := range set.Items {
						if _, err := examples.InstallItem(repo, item, force); err != nil {
							cli.PrintWarning("Skipped %s: %v, use --force to overwrite", item.Name, err)
							continue
						}
						cli.PrintSuccess("Installed item %s", item.Name)
					}
				}
			}

			cli.PrintInfo("Run 'schemadeck list' to see your items.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withExamples, "examples", false, "Install example items")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing example items")

	return cmd
}
