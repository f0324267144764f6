package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg"
)

var submodulesCmd = &cobra.Command{
	Use:   "submodules",
	Short: "Initializes and updates all git submodules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inRoot, err := cmd.Flags().GetBool("in-root")
		if err != nil {
			return err
		}

		s, err := prepare(cmd)
		if err != nil {
			return err
		}

		pkg.PrintTask("Updating submodules")
		return s.orch.UpdateSubmodules(s.ctx, s.verbose, inRoot)
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolves the package dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inRoot, err := cmd.Flags().GetBool("in-root")
		if err != nil {
			return err
		}

		s, err := prepare(cmd)
		if err != nil {
			return err
		}

		pkg.PrintTask("Resolving dependencies")
		return s.orch.ResolveDependencies(s.ctx, s.verbose, inRoot)
	},
}

var sourceRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Prints the source root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prepare(cmd)
		if err != nil {
			return err
		}

		root, err := s.orch.SourceRoot(s.ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), root)
		return nil
	},
}

func init() {
	submodulesCmd.Flags().Bool("in-root", false, "run in the source root instead of the current directory")
	resolveCmd.Flags().Bool("in-root", false, "run in the source root instead of the current directory")

	rootCmd.AddCommand(submodulesCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(sourceRootCmd)
}
