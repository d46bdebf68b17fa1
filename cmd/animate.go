package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rm-hull/frosted-glass-overlays/internal/img"
)

// Animate assembles every file in dirPath (in directory order) into an
// animated PNG slideshow written to outputPath.
func Animate(dirPath, outputPath string, frameDelay float64) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read frames directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}

	if len(files) == 0 {
		return fmt.Errorf("no frames found in %s", dirPath)
	}

	apngBytes, err := img.Animate(files, frameDelay)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, apngBytes, 0644); err != nil {
		return err
	}

	log.Printf("Wrote %d frame(s) to %s", len(files), outputPath)
	return nil
}
