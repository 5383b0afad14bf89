package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GatherFiles collects the files below roots whose extension is one of
// extensions. Roots may be files or directories; directories are not
// descended into. The result holds absolute paths in lexical order.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	accepted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		accepted[ext] = true
	}

	matches := func(name string) bool {
		return accepted[strings.ToLower(filepath.Ext(name))]
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		switch {
		case fi.Mode().IsRegular():
			if matches(fi.Name()) {
				paths = append(paths, root)
			}

		case fi.IsDir():
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, entry := range entries {
				if entry.Type().IsRegular() && matches(entry.Name()) {
					paths = append(paths, filepath.Join(root, entry.Name()))
				}
			}

		default:
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	for i, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("absolute path: %w", err)
		}
		paths[i] = abs
	}

	sort.Strings(paths)

	return paths, nil
}
