package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rm-hull/frosted-glass-overlays/internal"
)

// Enhance runs the frosted-glass pipeline over the configured input, which
// may be a single image or a directory of images.
func Enhance(cfg internal.Config) error {
	internal.ShowVersion()

	if cfg.Output == "" {
		cfg.Output = defaultOutputPath(cfg.Input)
	}

	if cfg.FontPath == "" {
		cfg.FontPath = os.Getenv("FROSTED_FONT")
	}

	processor, err := internal.NewProcessor(cfg)
	if err != nil {
		return err
	}

	processor.StartWorkers()
	processor.DispatchJobs()
	processor.Wait()
	return nil
}

// defaultOutputPath inserts an "_enhanced" suffix before the file
// extension, e.g. photo.png -> photo_enhanced.png. For a directory input
// (no extension) this yields a sibling directory name.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_enhanced" + ext
}
