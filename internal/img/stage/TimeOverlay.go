package stage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rm-hull/frosted-glass-overlays/internal/img"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// one-pixel offsets in the 8 compass directions, used to synthesize an
// outline by over-drawing the caption in black before the white fill
var outlineOffsets = []image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type TimeOverlayStage struct {
	Text           string
	BandHeight     int
	FontSize       float64
	Padding        int
	VerticalOffset int
	FontPath       string
}

// Process draws the caption right-aligned and vertically centered within the
// bottom band, white with a one-pixel black outline. Vertical centering is
// based on the face ascent minus half the measured text height, which
// centers the visual mass of the glyphs rather than the bounding box.
// Unlike the other stages this draws onto the input image in place.
func (s *TimeOverlayStage) Process(p *img.Image) error {
	face, err := loadFace(s.FontPath, s.FontSize)
	if err != nil {
		return fmt.Errorf("failed to load typeface: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	dst, ok := p.Img.(draw.Image)
	if !ok {
		clone := imaging.Clone(p.Img)
		p.Img = clone
		dst = clone
	}

	width := p.Bounds.Dx()
	height := p.Bounds.Dy()
	bandStartY := height - s.BandHeight
	bandCenterY := bandStartY + s.BandHeight/2

	bounds, _ := font.BoundString(face, s.Text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	metrics := face.Metrics()
	textCenterY := metrics.Ascent.Ceil() - textHeight/2

	textX := width - textWidth - s.Padding
	textY := bandCenterY - textCenterY + s.VerticalOffset

	// (textX, textY) is the top-left corner of the inked text; the drawer
	// wants a baseline origin, so shift by the left bearing and the ascent.
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	dot := func(offset image.Point) fixed.Point26_6 {
		return fixed.Point26_6{
			X: fixed.I(textX+offset.X) - bounds.Min.X,
			Y: fixed.I(textY+offset.Y) + metrics.Ascent,
		}
	}

	for _, offset := range outlineOffsets {
		drawer.Dot = dot(offset)
		drawer.DrawString(s.Text)
	}

	drawer.Src = image.NewUniform(color.White)
	drawer.Dot = dot(image.Point{})
	drawer.DrawString(s.Text)

	return nil
}

// loadFace opens the typeface at path, or the built-in Go Regular face when
// path is empty.
func loadFace(path string, size float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
