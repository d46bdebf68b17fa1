package stage

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestTimeOverlayStage(t *testing.T) {

	newStage := func() *TimeOverlayStage {
		return &TimeOverlayStage{
			Text:       "09:30",
			BandHeight: 80,
			FontSize:   40,
			Padding:    30,
		}
	}

	t.Run("caption is drawn white with a black outline inside the band", func(t *testing.T) {
		p := wrap(imaging.New(400, 200, background))
		assert.NoError(t, newStage().Process(p))

		white, black := 0, 0
		for y := 120; y < 200; y++ {
			for x := 0; x < 400; x++ {
				c := color.NRGBAModel.Convert(p.Img.At(x, y)).(color.NRGBA)
				if c.R > 200 && c.G > 200 && c.B > 200 {
					white++
				}
				if c.R < 20 && c.G < 20 && c.B < 20 {
					black++
				}
			}
		}
		assert.Greater(t, white, 0, "expected white fill pixels")
		assert.Greater(t, black, 0, "expected black outline pixels")
	})

	t.Run("pixels above the band are untouched", func(t *testing.T) {
		p := wrap(imaging.New(400, 200, background))
		assert.NoError(t, newStage().Process(p))

		for y := 0; y < 118; y++ {
			for x := 0; x < 400; x++ {
				c := color.NRGBAModel.Convert(p.Img.At(x, y)).(color.NRGBA)
				assert.Equal(t, background, c, "pixel (%d,%d) changed", x, y)
			}
		}
	})

	t.Run("no ink to the right of the padding margin", func(t *testing.T) {
		p := wrap(imaging.New(400, 200, background))
		assert.NoError(t, newStage().Process(p))

		// the inked right edge sits at width-padding (white fill ends one
		// pixel earlier, the outline pass extends it by one)
		for y := 120; y < 200; y++ {
			for x := 400 - 30 + 1; x < 400; x++ {
				c := color.NRGBAModel.Convert(p.Img.At(x, y)).(color.NRGBA)
				assert.Equal(t, background, c, "unexpected ink at (%d,%d)", x, y)
			}
		}
	})

	t.Run("draws in place when the input is mutable", func(t *testing.T) {
		src := imaging.New(400, 200, background)
		p := wrap(src)
		assert.NoError(t, newStage().Process(p))
		assert.Same(t, src, p.Img)
	})

	t.Run("missing typeface file fails", func(t *testing.T) {
		p := wrap(imaging.New(400, 200, background))
		stage := newStage()
		stage.FontPath = "no/such/face.ttf"
		assert.Error(t, stage.Process(p))
	})
}
