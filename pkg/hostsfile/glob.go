package hostsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// ExpandSources expands hosts file paths and glob patterns into a deduplicated,
// sorted list of paths. Directories matched by a glob are skipped. Patterns that
// match nothing are kept as literal paths so that Open reports the missing file.
func ExpandSources(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var result []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		result = append(result, path)
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				continue
			}
			add(match)
		}
	}

	slices.Sort(result)

	return result, nil
}
