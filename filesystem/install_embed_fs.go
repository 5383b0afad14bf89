package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bgraf/exifview/logging"
)

// InstallEmbedFS writes every file of fsys below root, creating directories
// as needed. Existing files are overwritten.
func InstallEmbedFS(fsys fs.FS, root string) error {
	logger := logging.Component("install")

	if err := os.MkdirAll(root, 0777); err != nil {
		return fmt.Errorf("creating root directory '%s' failed: %w", root, err)
	}

	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("could not read embedded FS: %w", err)
		}

		target := filepath.Join(root, filepath.FromSlash(path))

		if entry.IsDir() {
			if err := os.MkdirAll(target, 0777); err != nil {
				return fmt.Errorf("could not create directory '%s': %w", target, err)
			}
			return nil
		}

		logger.Info().Str("file", path).Str("target", target).Msg("installing")

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", path, err)
		}

		if err := os.WriteFile(target, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", target, err)
		}

		return nil
	})
}
