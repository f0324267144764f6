package bootstrap

import (
	"context"

	"github.com/rotisserie/eris"
)

// BuildOptions shape the package build command.
type BuildOptions struct {
	// Product limits the build to a single product.
	Product   string
	ExtraArgs []string
	Quiet     bool
	// InRoot runs the command in the source root instead of the current directory.
	InRoot bool
}

// BuildArgs returns the full build command for opts.
func (o *Orchestrator) BuildArgs(opts BuildOptions) []string {
	args := append([]string{}, o.Config.Build...)
	if opts.Product != "" {
		args = append(args, "--product", opts.Product)
	}

	return append(args, opts.ExtraArgs...)
}

// runHere runs args in the current directory, or in the source root if inRoot is set.
func (o *Orchestrator) runHere(ctx context.Context, args []string, quiet, inRoot bool) error {
	return o.withScope(func() error {
		var (
			dir string
			err error
		)

		if inRoot {
			dir, err = EnterRoot(ctx, o.FS, o.ExePath, o.Config.Marker)
			if err != nil {
				return err
			}
		} else {
			dir, err = o.FS.Getwd()
			if err != nil {
				return eris.Wrap(err, "Failed to retrieve the current working directory")
			}
		}

		return o.run(ctx, args, dir, quiet)
	})
}

// Build runs the package build.
func (o *Orchestrator) Build(ctx context.Context, opts BuildOptions) error {
	return o.runHere(ctx, o.BuildArgs(opts), opts.Quiet, opts.InRoot)
}

// UpdateSubmodules initializes and updates all submodules recursively.
func (o *Orchestrator) UpdateSubmodules(ctx context.Context, verbose, inRoot bool) error {
	return o.runHere(ctx, o.Config.Submodules, !verbose, inRoot)
}

// ResolveDependencies fetches the package dependencies.
func (o *Orchestrator) ResolveDependencies(ctx context.Context, verbose, inRoot bool) error {
	return o.runHere(ctx, o.Config.Resolve, !verbose, inRoot)
}
