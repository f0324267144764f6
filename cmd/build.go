package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/bootstrap"
)

var buildCmd = &cobra.Command{
	Use:   "build [-- extra args]",
	Short: "Builds the package",
	Long:  `Runs the package build. Everything after -- is passed to the build command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := cmd.Flags().GetString("product")
		if err != nil {
			return err
		}

		inRoot, err := cmd.Flags().GetBool("in-root")
		if err != nil {
			return err
		}

		s, err := prepare(cmd)
		if err != nil {
			return err
		}

		msg := "Building"
		if product != "" {
			msg += " " + product
		}
		pkg.PrintTask(msg)

		return s.orch.Build(s.ctx, bootstrap.BuildOptions{
			Product:   product,
			ExtraArgs: args,
			Quiet:     !s.verbose,
			InRoot:    inRoot,
		})
	},
}

func init() {
	buildCmd.Flags().StringP("product", "p", "", "only build the given product")
	buildCmd.Flags().Bool("in-root", false, "run in the source root instead of the current directory")
	rootCmd.AddCommand(buildCmd)
}
