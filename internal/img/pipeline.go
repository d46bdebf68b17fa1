package img

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const jpegQuality = 95

type Image struct {
	Img    image.Image
	Bounds image.Rectangle
	Format string
}

type PipelineStage interface {
	Process(img *Image) error
}

func NewFromReader(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Image{
		Img:    img,
		Bounds: img.Bounds(),
		Format: format,
	}, nil
}

func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return NewFromReader(f)
}

func (p *Image) Write(w io.Writer, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, p.Img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		return png.Encode(w, p.Img)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Save encodes the image to path, choosing the format from the file
// extension and falling back to the decoded format. The file is written to
// a temporary sibling first and renamed into place.
func (p *Image) Save(path string) error {
	format := p.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".png":
		format = "png"
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "enhance-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := p.Write(tmpFile, format); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return nil
}

func (p *Image) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}
