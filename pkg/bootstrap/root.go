package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/workdir"
)

// AscentLevels returns how many directories have to be ascended from the directory
// containing exePath to reach the source root. marker is the path fragment that
// starts the build output (".build/"). If it occurs more than once, the last
// occurrence wins so binaries built inside checked-out dependencies resolve to the
// dependency's root.
func AscentLevels(exePath, marker string) (int, error) {
	dir := filepath.ToSlash(filepath.Dir(exePath)) + "/"
	marker = filepath.ToSlash(marker)

	pos := strings.LastIndex(dir, marker)
	if marker == "" || pos == -1 {
		return 0, eris.Wrapf(ErrInvalidPath, "%s is not located below %s", exePath, marker)
	}

	components := strings.FieldsFunc(dir[pos+len(marker):], func(r rune) bool {
		return r == '/'
	})

	// +1 to leave the build output directory itself
	return len(components) + 1, nil
}

// AscentPath returns the relative path leading from the directory containing
// exePath to the source root, i.e. "../../.." for three levels.
func AscentPath(exePath, marker string) (string, error) {
	levels, err := AscentLevels(exePath, marker)
	if err != nil {
		return "", err
	}

	return upPath(levels), nil
}

func upPath(levels int) string {
	parts := make([]string, levels)
	for idx := range parts {
		parts[idx] = ".."
	}

	return strings.Join(parts, string(filepath.Separator))
}

func chdir(fs workdir.Filesystem, dir string) error {
	if err := fs.Chdir(dir); err != nil {
		return eris.Wrapf(ErrDirectoryChange, "Failed to enter %s: %v", dir, err)
	}
	return nil
}

// EnterRoot changes fs' working directory to the source root of the project exePath
// was built in and returns the new working directory. The path is validated before
// the working directory is touched.
func EnterRoot(ctx context.Context, fs workdir.Filesystem, exePath, marker string) (string, error) {
	ascent, err := AscentPath(exePath, marker)
	if err != nil {
		return "", err
	}

	exeDir := filepath.Dir(exePath)
	if err = chdir(fs, exeDir); err != nil {
		return "", err
	}

	if ascent != "" {
		if err = chdir(fs, ascent); err != nil {
			return "", err
		}
	}

	root, err := fs.Getwd()
	if err != nil {
		return "", eris.Wrap(err, "Failed to retrieve the current working directory")
	}

	log(ctx).Debug().
		Str("path", root).
		Str("ascent", ascent).
		Msg("entered source root")
	return root, nil
}
