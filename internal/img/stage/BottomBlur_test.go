package stage

import (
	"image"
	"image/color"
	"testing"

	"github.com/rm-hull/frosted-glass-overlays/internal/img"
	"github.com/stretchr/testify/assert"
)

func gradientImage(width, height int) *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			im.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7),
				G: uint8(y * 5),
				B: uint8(x + y),
				A: 255,
			})
		}
	}
	return im
}

func wrap(src image.Image) *img.Image {
	return &img.Image{Img: src, Bounds: src.Bounds(), Format: "png"}
}

func TestBottomBlurStage(t *testing.T) {

	t.Run("pixels above the band are untouched", func(t *testing.T) {
		src := gradientImage(100, 100)
		p := wrap(src)

		stage := &BottomBlurStage{Radius: 10, BandHeight: 40}
		assert.NoError(t, stage.Process(p))

		for y := 0; y < 60; y++ {
			for x := 0; x < 100; x++ {
				assert.Equal(t, src.At(x, y), color.NRGBAModel.Convert(p.Img.At(x, y)),
					"pixel (%d,%d) above the band changed", x, y)
			}
		}
	})

	t.Run("pixels inside the band are blurred", func(t *testing.T) {
		src := gradientImage(100, 100)
		p := wrap(src)

		stage := &BottomBlurStage{Radius: 10, BandHeight: 40}
		assert.NoError(t, stage.Process(p))

		changed := 0
		for y := 60; y < 100; y++ {
			for x := 0; x < 100; x++ {
				if src.At(x, y) != color.NRGBAModel.Convert(p.Img.At(x, y)) {
					changed++
				}
			}
		}
		assert.Greater(t, changed, 0, "expected the band to be blurred")
	})

	t.Run("band height is clamped to the image height", func(t *testing.T) {
		src := gradientImage(50, 30)
		p := wrap(src)

		stage := &BottomBlurStage{Radius: 5, BandHeight: 500}
		assert.NoError(t, stage.Process(p))
		assert.Equal(t, image.Rect(0, 0, 50, 30), p.Img.Bounds())
	})

	t.Run("zero band height is a no-op", func(t *testing.T) {
		src := gradientImage(50, 30)
		p := wrap(src)

		stage := &BottomBlurStage{Radius: 5, BandHeight: 0}
		assert.NoError(t, stage.Process(p))
		assert.Same(t, src, p.Img)
	})
}
