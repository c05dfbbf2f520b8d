package inspect

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
)

// EXIF is the tag subset reported for image payloads that carry EXIF data.
type EXIF struct {
	Make             string `json:"make,omitempty"`
	Model            string `json:"model,omitempty"`
	DateTimeOriginal string `json:"date_time_original,omitempty"`
	Orientation      int    `json:"orientation,omitempty"`
}

// parseEXIF decodes the EXIF block of a payload, returning the tag subset
// and the X/Y resolution in dots per inch. Payloads without EXIF return a
// nil subset and zero resolutions.
func parseEXIF(data []byte) (*EXIF, float64, float64) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0
	}

	e := &EXIF{}
	if tag, err := x.Get(exif.Make); err == nil {
		e.Make, _ = tag.StringVal()
	}
	if tag, err := x.Get(exif.Model); err == nil {
		e.Model, _ = tag.StringVal()
	}
	if tag, err := x.Get(exif.DateTimeOriginal); err == nil {
		e.DateTimeOriginal, _ = tag.StringVal()
	}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			e.Orientation = v
		}
	}

	return e, resolution(x, exif.XResolution), resolution(x, exif.YResolution)
}

func resolution(x *exif.Exif, field exif.FieldName) float64 {
	tag, err := x.Get(field)
	if err != nil {
		return 0
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
