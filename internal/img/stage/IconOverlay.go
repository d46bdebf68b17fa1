package stage

import (
	"image"
	"log"

	"github.com/disintegration/imaging"
	"github.com/rm-hull/frosted-glass-overlays/internal/img"
)

type IconOverlayStage struct {
	IconPaths  []string
	BandHeight int
	IconSize   int
	Spacing    int
}

// Process composites each icon into the bottom band: resized to a
// IconSize square with Lanczos resampling, the row horizontally centered,
// each icon vertically centered within the band. An icon that cannot be
// loaded is logged and skipped; its slot stays vacant so the remaining
// icons keep their pre-computed positions.
func (s *IconOverlayStage) Process(p *img.Image) error {
	if len(s.IconPaths) == 0 {
		return nil
	}

	width := p.Bounds.Dx()
	height := p.Bounds.Dy()
	bandStartY := height - s.BandHeight

	n := len(s.IconPaths)
	totalRowWidth := n*s.IconSize + (n-1)*s.Spacing
	startX := (width - totalRowWidth) / 2
	iconY := bandStartY + (s.BandHeight-s.IconSize)/2

	result := imaging.Clone(p.Img)
	for i, path := range s.IconPaths {
		icon, err := imaging.Open(path)
		if err != nil {
			log.Printf("Cannot load icon %s: %v", path, err)
			continue
		}
		icon = imaging.Resize(icon, s.IconSize, s.IconSize, imaging.Lanczos)

		iconX := startX + i*(s.IconSize+s.Spacing)
		result = imaging.Overlay(result, icon, image.Pt(iconX, iconY), 1.0)
	}

	p.Img = result
	return nil
}
