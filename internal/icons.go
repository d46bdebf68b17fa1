package internal

import (
	"log"
	"os"
	"path/filepath"
)

// ListIcons returns the path of every entry in dir, non-recursive and with
// no extension filtering — undecodable entries are skipped later by the
// icon overlay stage. An unreadable directory degrades to an empty list so
// the rest of the pipeline still runs.
func ListIcons(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Cannot read icon directory %s: %v", dir, err)
		return nil
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}
