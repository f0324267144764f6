package cmd

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/bootstrap"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/config"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/runner"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/workdir"
)

var rootCmd = &cobra.Command{
	Use:   "bootstrap-tool",
	Short: "Bootstrap helper for Swift package builds",
	Long: `This command locates the source root of the package it was built in, runs the
package manager and hands off to the bootstrap executables of checked-out dependencies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "show the output of the invoked commands")
	flags.StringP("config", "c", "", "path to a bootstrap.yml file")
	flags.String("exe", "", "path of the running executable (defaults to the first program argument)")
	flags.BoolP("dry", "n", false, "dry run; only print the commands, don't execute anything")
}

// session bundles everything a command needs to run.
type session struct {
	ctx     context.Context
	orch    *bootstrap.Orchestrator
	verbose bool
}

func newSession(cmd *cobra.Command, fs workdir.Filesystem, environ config.Env) (*session, error) {
	flags := cmd.Flags()
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	verbose = verbose || environ.Verbose

	dryRun, err := flags.GetBool("dry")
	if err != nil {
		return nil, err
	}

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if cfgPath == "" {
		cfgPath = environ.ConfigPath
	}

	exePath, err := flags.GetString("exe")
	if err != nil {
		return nil, err
	}
	if exePath == "" {
		exePath = os.Args[0]
	}

	cfg, err := config.Load(cfgPath, environ)
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(NewConsoleWriter(cmd.ErrOrStderr(), environ.CI)).Level(zerolog.InfoLevel)
	if verbose || environ.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}

	shell := runner.NewShell(&logger)
	shell.Stdout = cmd.OutOrStdout()
	shell.Stderr = cmd.ErrOrStderr()
	shell.DryRun = dryRun

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &session{
		ctx:     bootstrap.WithLogger(ctx, &logger),
		orch:    bootstrap.New(fs, shell, cfg, exePath),
		verbose: verbose,
	}, nil
}

func prepare(cmd *cobra.Command) (*session, error) {
	environ, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	return newSession(cmd, workdir.NewOS(), environ)
}

func Execute() {
	environ, err := config.LoadEnv()
	if err != nil {
		environ = config.Env{}
	}

	if environ.CI {
		pkg.DisableColors()
	}

	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		return eris.ToString(err, environ.Debug)
	}

	err = rootCmd.Execute()
	if err == nil {
		return
	}

	logger := zerolog.New(NewConsoleWriter(os.Stderr, environ.CI))
	logger.Error().Err(err).Msg("Failed")

	if code, ok := bootstrap.ExitCode(err); ok {
		os.Exit(code)
	}
	os.Exit(1)
}
