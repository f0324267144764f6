package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap <project>...",
	Short: "Runs the bootstrap executable of the given projects",
	Long: `Looks for each project below the checkouts directory (falling back to the source root)
and runs its bootstrap-<project> executable inside the project's directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prepare(cmd)
		if err != nil {
			return err
		}

		for _, project := range args {
			pkg.PrintTask("Bootstrapping " + project)
			err = s.orch.Bootstrap(s.ctx, project, s.verbose)
			if err != nil {
				return err
			}
		}

		pkg.PrintTask("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}
