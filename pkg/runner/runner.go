// Package runner executes external commands through the mvdan.cc/sh interpreter.
// Commands are passed as argument lists and quoted before they reach the parser so
// arguments containing whitespace or shell syntax are never split or expanded.
package runner

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Command describes a single process invocation.
type Command struct {
	Args []string
	// Dir is the directory the process starts in. Empty means the current directory.
	Dir string
	// Quiet discards the process' stdout and stderr.
	Quiet bool
}

// Runner runs a command and reports its exit status.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// Shell is the default Runner.
type Shell struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *zerolog.Logger
	// DryRun only logs the command line.
	DryRun bool
}

func NewShell(logger *zerolog.Logger) *Shell {
	return &Shell{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// CommandLine renders args as a single shell command line.
func CommandLine(args []string) (string, error) {
	parts := make([]string, len(args))
	for idx, arg := range args {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", eris.Wrapf(err, "Failed to quote argument %q", arg)
		}
		parts[idx] = quoted
	}

	return strings.Join(parts, " "), nil
}

func (s *Shell) log() *zerolog.Logger {
	if s.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return s.Logger
}

func (s *Shell) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		hc := interp.HandlerCtx(ctx)
		s.log().Debug().
			Str("path", hc.Dir).
			Strs("args", args).
			Msg("spawning process")

		return next(ctx, args)
	}
}

// Run executes cmd and returns its exit status. An error is only returned if the
// process could not be started at all.
func (s *Shell) Run(ctx context.Context, cmd Command) (int, error) {
	if len(cmd.Args) == 0 {
		return 0, eris.New("Empty command")
	}

	line, err := CommandLine(cmd.Args)
	if err != nil {
		return 0, err
	}

	dir := cmd.Dir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return 0, eris.Wrap(err, "Failed to retrieve the current working directory")
		}
	}

	s.log().Info().
		Str("path", dir).
		Bool("command", true).
		Msg(line)

	if s.DryRun {
		return 0, nil
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return 0, eris.Wrapf(err, "Failed to parse command %s", line)
	}

	stdout, stderr := s.Stdout, s.Stderr
	if cmd.Quiet {
		stdout, stderr = io.Discard, io.Discard
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.ExecHandlers(s.execHandler),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return 0, eris.Wrap(err, "Failed to initialize runner")
	}

	err = runner.Run(ctx, prog)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}
		return 0, eris.Wrapf(err, "Failed to run %s", line)
	}

	return 0, nil
}
