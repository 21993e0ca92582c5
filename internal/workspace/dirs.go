package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// dataDirMode is the permission mode for created data directories.
// Group/other read+execute lets the container user traverse bind mounts.
const dataDirMode = 0o755

// EnsureDataDirs creates the given directories under root, including any
// missing parents. Existing directories are left untouched, so repeated
// invocation is safe and concurrent invocation cannot fail on a
// directory that appeared between check and create, since os.MkdirAll treats
// an existing directory as success.
//
// Returns the absolute paths that were newly created, for verbose
// diagnostics.
func EnsureDataDirs(root string, dirs []string) ([]string, error) {
	created := make([]string, 0, len(dirs))

	for _, dir := range dirs {
		path := dir
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, dir)
		}

		// Stat first only to report what was actually new; MkdirAll
		// itself is the idempotent operation.
		_, statErr := os.Stat(path)

		if err := os.MkdirAll(path, dataDirMode); err != nil {
			return created, model.WrapCLIError(
				model.ExitGeneralError,
				fmt.Sprintf("failed to create data directory %s", path),
				err,
			)
		}

		if os.IsNotExist(statErr) {
			created = append(created, path)
		}
	}

	return created, nil
}
