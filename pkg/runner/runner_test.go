package runner

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell() (*Shell, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Shell{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX sh")
	}
}

func TestCommandLine(t *testing.T) {
	line, err := CommandLine([]string{"swift", "build", "--product", "my tool"})
	require.NoError(t, err)
	assert.Equal(t, "swift build --product 'my tool'", line)

	_, err = CommandLine([]string{"bad\x00arg"})
	assert.Error(t, err)
}

func TestRunExitStatus(t *testing.T) {
	skipOnWindows(t)

	for _, tc := range []struct {
		script string
		status int
	}{
		{"exit 0", 0},
		{"exit 1", 1},
		{"exit 3", 3},
		{"exit 42", 42},
	} {
		t.Run(tc.script, func(t *testing.T) {
			sh, _, _ := newTestShell()
			status, err := sh.Run(context.Background(), Command{Args: []string{"sh", "-c", tc.script}})
			require.NoError(t, err)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestRunKeepsArgumentsIntact(t *testing.T) {
	skipOnWindows(t)

	sh, stdout, _ := newTestShell()
	status, err := sh.Run(context.Background(), Command{
		Args: []string{"sh", "-c", `printf '%s|' "$0" "$1"`, "a b", "$HOME;*"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "a b|$HOME;*|", stdout.String())
}

func TestRunQuiet(t *testing.T) {
	skipOnWindows(t)

	sh, stdout, stderr := newTestShell()
	status, err := sh.Run(context.Background(), Command{
		Args:  []string{"sh", "-c", "echo out; echo err >&2"},
		Quiet: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())

	status, err = sh.Run(context.Background(), Command{
		Args: []string{"sh", "-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunDir(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	sh, stdout, _ := newTestShell()
	status, err := sh.Run(context.Background(), Command{Args: []string{"sh", "-c", "pwd -P"}, Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, expected+"\n", stdout.String())
}

func TestRunMissingDir(t *testing.T) {
	sh, _, _ := newTestShell()
	_, err := sh.Run(context.Background(), Command{
		Args: []string{"true"},
		Dir:  filepath.Join(t.TempDir(), "missing"),
	})
	assert.Error(t, err)
}

func TestRunUnknownCommand(t *testing.T) {
	skipOnWindows(t)

	sh, _, _ := newTestShell()
	status, err := sh.Run(context.Background(), Command{Args: []string{"bootstrap-does-not-exist-anywhere"}})
	require.NoError(t, err)
	assert.Equal(t, 127, status)
}

func TestRunEmpty(t *testing.T) {
	sh, _, _ := newTestShell()
	_, err := sh.Run(context.Background(), Command{})
	assert.Error(t, err)
}

func TestDryRun(t *testing.T) {
	sh, stdout, _ := newTestShell()
	sh.DryRun = true

	status, err := sh.Run(context.Background(), Command{
		Args: []string{"sh", "-c", "exit 9"},
		Dir:  filepath.Join(t.TempDir(), "missing"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Empty(t, stdout.String())
}
