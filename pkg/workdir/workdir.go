// Package workdir abstracts the working directory and directory listings so that
// the bootstrap logic can run against the real process state or an in-memory tree.
package workdir

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// Filesystem is the subset of filesystem operations the bootstrap steps need.
type Filesystem interface {
	Getwd() (string, error)
	Chdir(dir string) error
	// ReadDir returns the names of the immediate children of dir.
	ReadDir(dir string) ([]string, error)
}

func readNames(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(infos))
	for idx, info := range infos {
		names[idx] = info.Name()
	}
	return names, nil
}

// OS operates on the process' working directory.
type OS struct {
	fs afero.Fs
}

func NewOS() *OS {
	return &OS{fs: afero.NewOsFs()}
}

func (o *OS) Getwd() (string, error) {
	return os.Getwd()
}

func (o *OS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (o *OS) ReadDir(dir string) ([]string, error) {
	return readNames(o.fs, dir)
}

// Mem keeps its own working directory on top of an afero filesystem. It never
// touches the process state which makes it suitable for tests and dry runs.
type Mem struct {
	Fs  afero.Fs
	cwd string
}

// NewMem returns an empty in-memory tree whose working directory is cwd.
// cwd is created if necessary.
func NewMem(cwd string) *Mem {
	fs := afero.NewMemMapFs()
	cwd = filepath.Clean(cwd)
	_ = fs.MkdirAll(cwd, 0o755)

	return &Mem{Fs: fs, cwd: cwd}
}

// MkdirAll creates the given directories relative to the current working directory.
func (m *Mem) MkdirAll(dirs ...string) error {
	for _, dir := range dirs {
		if err := m.Fs.MkdirAll(m.resolve(dir), 0o755); err != nil {
			return eris.Wrapf(err, "Failed to create %s", dir)
		}
	}
	return nil
}

func (m *Mem) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(m.cwd, dir)
}

func (m *Mem) Getwd() (string, error) {
	return m.cwd, nil
}

func (m *Mem) Chdir(dir string) error {
	target := m.resolve(dir)
	isDir, err := afero.IsDir(m.Fs, target)
	if err != nil {
		return &os.PathError{Op: "chdir", Path: dir, Err: err}
	}
	if !isDir {
		return &os.PathError{Op: "chdir", Path: dir, Err: os.ErrInvalid}
	}

	m.cwd = target
	return nil
}

func (m *Mem) ReadDir(dir string) ([]string, error) {
	return readNames(m.Fs, m.resolve(dir))
}

// Scope remembers a working directory so it can be restored later.
type Scope struct {
	fs   Filesystem
	orig string
}

// Enter records the current working directory of fs.
func Enter(fs Filesystem) (*Scope, error) {
	wd, err := fs.Getwd()
	if err != nil {
		return nil, eris.Wrap(err, "Failed to retrieve the current working directory")
	}

	return &Scope{fs: fs, orig: wd}, nil
}

// Dir returns the recorded directory.
func (s *Scope) Dir() string {
	return s.orig
}

// Restore switches back to the recorded directory.
func (s *Scope) Restore() error {
	if err := s.fs.Chdir(s.orig); err != nil {
		return eris.Wrapf(err, "Failed to return to %s", s.orig)
	}
	return nil
}
