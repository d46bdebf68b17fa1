package stage

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/rm-hull/frosted-glass-overlays/internal/img"
)

type BottomBlurStage struct {
	Radius     float64
	BandHeight int
}

// Process applies a Gaussian blur to the bottom BandHeight pixels of the
// image, leaving everything above the band untouched. BandHeight is clamped
// to the image height. The band is cropped out, blurred in isolation (the
// blur kernel never sees pixels outside the band) and pasted back into a
// copy of the original.
func (s *BottomBlurStage) Process(p *img.Image) error {
	width := p.Bounds.Dx()
	height := p.Bounds.Dy()

	bandHeight := s.BandHeight
	if bandHeight > height {
		bandHeight = height
	}
	if bandHeight <= 0 {
		return nil
	}

	bandRect := image.Rect(0, height-bandHeight, width, height)
	band := imaging.Crop(p.Img, bandRect)
	blurred := blur.Gaussian(band, s.Radius)

	result := imaging.Clone(p.Img)
	p.Img = imaging.Paste(result, blurred, image.Pt(0, height-bandHeight))
	return nil
}
