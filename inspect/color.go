package inspect

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// maxSamples caps the pixel samples taken per image so large images stay
// cheap to inspect.
const maxSamples = 4096

// sampleColors fills the average color fields of info from a grid sample of
// the decoded image.
func sampleColors(info *Info, img image.Image) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	stride := int(math.Sqrt(float64(w*h) / float64(maxSamples)))
	if stride < 1 {
		stride = 1
	}

	var sumR, sumG, sumB float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel, no color information.
				continue
			}
			sumR += c.R
			sumG += c.G
			sumB += c.B
			n++
		}
	}
	if n == 0 {
		return
	}

	avg := colorful.Color{R: sumR / float64(n), G: sumG / float64(n), B: sumB / float64(n)}
	info.AvgColorHex = avg.Hex()
	_, s, _ := avg.Hsv()
	info.AvgSaturation = s
	info.AvgLuminance = 0.2126*avg.R + 0.7152*avg.G + 0.0722*avg.B
}
