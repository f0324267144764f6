package bootstrap

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/runner"
	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/workdir"
)

// recordingFS logs every directory change and can refuse selected ones.
type recordingFS struct {
	*workdir.Mem
	chdirs []string
	refuse map[string]bool
}

func newRecordingFS(t *testing.T, cwd string, dirs ...string) *recordingFS {
	t.Helper()
	mem := workdir.NewMem(p(cwd))
	for _, dir := range dirs {
		require.NoError(t, mem.MkdirAll(p(dir)))
	}

	return &recordingFS{Mem: mem, refuse: map[string]bool{}}
}

func (r *recordingFS) Chdir(dir string) error {
	r.chdirs = append(r.chdirs, dir)
	if r.refuse[dir] {
		return errors.New("permission denied")
	}
	return r.Mem.Chdir(dir)
}

func (r *recordingFS) cwd(t *testing.T) string {
	t.Helper()
	wd, err := r.Getwd()
	require.NoError(t, err)
	return wd
}

type fakeRunner struct {
	calls  []runner.Command
	status int
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, cmd runner.Command) (int, error) {
	f.calls = append(f.calls, cmd)
	return f.status, f.err
}

// p converts a slash separated test path to the OS format.
func p(path string) string {
	return filepath.FromSlash(path)
}
