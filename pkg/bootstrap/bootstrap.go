package bootstrap

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/config"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/runner"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/workdir"
)

// Orchestrator ties the root lookup, the project lookup and the process runner together.
// Only one operation may run at a time on a given Filesystem.
type Orchestrator struct {
	FS      workdir.Filesystem
	Runner  runner.Runner
	Config  *config.Config
	ExePath string
}

func New(fs workdir.Filesystem, r runner.Runner, cfg *config.Config, exePath string) *Orchestrator {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Orchestrator{
		FS:      fs,
		Runner:  r,
		Config:  cfg,
		ExePath: exePath,
	}
}

// withScope runs fn and restores the working directory afterwards, no matter how fn
// returned. A restore failure is only reported if fn succeeded.
func (o *Orchestrator) withScope(fn func() error) (err error) {
	scope, err := workdir.Enter(o.FS)
	if err != nil {
		return err
	}

	defer func() {
		rErr := scope.Restore()
		if rErr != nil && err == nil {
			err = eris.Wrap(ErrDirectoryChange, rErr.Error())
		}
	}()

	return fn()
}

func (o *Orchestrator) run(ctx context.Context, args []string, dir string, quiet bool) error {
	status, err := o.Runner.Run(ctx, runner.Command{
		Args:  args,
		Dir:   dir,
		Quiet: quiet,
	})
	if err != nil {
		return err
	}

	if status != 0 {
		return &CommandError{Args: args, ExitCode: status}
	}
	return nil
}

// Bootstrap finds the checkout of project (first below the checkouts directory, then
// in the source root) and runs its bootstrap executable inside of it. The working
// directory is restored before Bootstrap returns.
func (o *Orchestrator) Bootstrap(ctx context.Context, project string, verbose bool) error {
	if project == "" {
		return eris.New("No project name given")
	}

	return o.withScope(func() error {
		root, err := EnterRoot(ctx, o.FS, o.ExePath, o.Config.Marker)
		if err != nil {
			return err
		}

		dir, err := EnterProject(ctx, o.FS, project, root, o.Config.Checkouts)
		if err != nil {
			return err
		}

		log(ctx).Info().
			Str("task", project).
			Str("path", dir).
			Msgf("Bootstrapping %s", project)

		return o.run(ctx, o.Config.BootstrapCommand(project), dir, !verbose)
	})
}

// SourceRoot returns the source root without changing the working directory.
func (o *Orchestrator) SourceRoot(ctx context.Context) (string, error) {
	var root string
	err := o.withScope(func() error {
		var err error
		root, err = EnterRoot(ctx, o.FS, o.ExePath, o.Config.Marker)
		return err
	})

	return root, err
}
