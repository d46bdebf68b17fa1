package img

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/kettek/apng"
)

// Animate assembles the given image files into an animated PNG with the
// same per-frame delay (in seconds) for every frame. Frames may be any
// registered image format; they are re-encoded as PNG.
func Animate(files []string, frameDelay float64) ([]byte, error) {

	a := apng.APNG{
		Frames:    make([]apng.Frame, len(files)),
		LoopCount: 0,
	}

	for i, fname := range files {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}

		frame, _, err := image.Decode(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to decode frame %s: %w", fname, err)
		}

		if err := f.Close(); err != nil {
			return nil, err
		}

		a.Frames[i] = apng.Frame{
			Image:            frame,
			DelayNumerator:   uint16(frameDelay * 1000),
			DelayDenominator: 1000,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
