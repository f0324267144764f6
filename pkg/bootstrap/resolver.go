package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/bootstrap-tools/pkg/workdir"
)

// ResolveProject looks for the first entry in parent whose name starts with name
// and changes into it. The order is whatever fs.ReadDir returns.
func ResolveProject(ctx context.Context, fs workdir.Filesystem, name, parent string) (string, error) {
	entries, err := fs.ReadDir(parent)
	if err != nil {
		return "", eris.Wrapf(ErrDirectoryNotFound, "Failed to list %s: %v", parent, err)
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry, name) {
			continue
		}

		dir := filepath.Join(parent, entry)
		if err = chdir(fs, dir); err != nil {
			return "", err
		}

		log(ctx).Debug().
			Str("path", dir).
			Msgf("found %s", name)
		return dir, nil
	}

	return "", eris.Wrapf(ErrDirectoryNotFound, "No entry in %s starts with %s", parent, name)
}

// EnterProject resolves name below root/checkouts and falls back to root itself.
func EnterProject(ctx context.Context, fs workdir.Filesystem, name, root, checkouts string) (string, error) {
	checkoutsDir := filepath.Join(root, checkouts)
	dir, err := ResolveProject(ctx, fs, name, checkoutsDir)
	if err == nil {
		return dir, nil
	}

	log(ctx).Debug().
		Err(err).
		Str("path", root).
		Msgf("%s isn't checked out, looking in the source root", name)

	dir, err = ResolveProject(ctx, fs, name, root)
	if err != nil {
		if eris.Is(err, ErrDirectoryNotFound) {
			return "", eris.Wrapf(ErrDirectoryNotFound, "Could not find %s in %s or %s", name, checkoutsDir, root)
		}
		return "", err
	}

	return dir, nil
}
