package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type migration struct {
	path string
	sql  string
}

// readMigrations returns every file in dir, ordered by name.
func readMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	var ms []migration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", path, err)
		}
		ms = append(ms, migration{path: path, sql: string(b)})
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].path < ms[j].path })

	return ms, nil
}
