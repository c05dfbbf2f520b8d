package inspect

import (
	"bytes"
	"image"
	"image/color"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sheetlens/sheetlens/content"

	// Register decoders for the formats spreadsheet containers embed.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info contains metadata about an inspected image file.
type Info struct {
	// Path is the file path on disk, empty when inspecting raw bytes.
	Path string `json:"extracted_path,omitempty"`
	// SizeBytes is the payload size in bytes.
	SizeBytes int64 `json:"file_size_bytes"`
	// SHA256 is the hex content hash of the payload.
	SHA256 string `json:"sha256,omitempty"`
	// MIME is the media type, guessed from the extension and falling back
	// to content sniffing.
	MIME string `json:"mime,omitempty"`
	// Extension is the lowercase file extension including the dot.
	Extension string `json:"extension,omitempty"`

	// Format is the registered decoder name ("png", "jpeg", ...), empty for
	// payloads no decoder recognizes.
	Format string `json:"format,omitempty"`
	// Width and Height are pixel dimensions.
	Width  int `json:"width_px,omitempty"`
	Height int `json:"height_px,omitempty"`
	// ColorModel names the decoded color model ("rgba", "ycbcr", ...).
	ColorModel string `json:"color_model,omitempty"`
	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth,omitempty"`
	// HasAlpha indicates whether the color model carries an alpha channel.
	HasAlpha bool `json:"has_alpha,omitempty"`

	// AvgColorHex is the average pixel color in "#rrggbb" form.
	AvgColorHex string `json:"avg_color_hex,omitempty"`
	// AvgLuminance is the average relative luminance, 0 to 1.
	AvgLuminance float64 `json:"avg_luminance,omitempty"`
	// AvgSaturation is the average HSV saturation, 0 to 1.
	AvgSaturation float64 `json:"avg_saturation,omitempty"`

	// DPIX and DPIY come from the EXIF resolution tags when present.
	DPIX float64 `json:"dpi_x,omitempty"`
	DPIY float64 `json:"dpi_y,omitempty"`
	// EXIF holds the tag subset, nil when the payload carries none.
	EXIF *EXIF `json:"exif,omitempty"`
}

// File inspects an image file on disk. It returns an error only when the
// file cannot be read; payloads that are not decodable images return the
// basic fields with the decode fields empty.
func File(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info := Bytes(data, path)
	info.Path = path
	return info, nil
}

// Bytes inspects an in-memory payload. The name hint is only used for the
// extension and MIME guess and may be empty.
func Bytes(data []byte, name string) *Info {
	info := &Info{
		SizeBytes: int64(len(data)),
		Extension: strings.ToLower(filepath.Ext(name)),
	}

	if hash, err := content.Hash(bytes.NewReader(data)); err == nil {
		info.SHA256 = hash
	}

	info.MIME = mime.TypeByExtension(info.Extension)
	if info.MIME == "" && len(data) > 0 {
		info.MIME = http.DetectContentType(data)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		// Not a decodable image, keep the basic fields only.
		return info
	}
	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height
	info.ColorModel = colorModelName(cfg.ColorModel)
	info.ColorDepth = colorDepth(cfg.ColorModel)
	info.HasAlpha = hasAlpha(cfg.ColorModel)

	if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
		sampleColors(info, img)
	}

	info.EXIF, info.DPIX, info.DPIY = parseEXIF(data)
	return info
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "rgba"
	case color.RGBA64Model:
		return "rgba64"
	case color.NRGBAModel:
		return "nrgba"
	case color.NRGBA64Model:
		return "nrgba64"
	case color.AlphaModel:
		return "alpha"
	case color.Alpha16Model:
		return "alpha16"
	case color.GrayModel:
		return "gray"
	case color.Gray16Model:
		return "gray16"
	case color.YCbCrModel:
		return "ycbcr"
	case color.NYCbCrAModel:
		return "nycbcra"
	case color.CMYKModel:
		return "cmyk"
	}
	if _, ok := m.(color.Palette); ok {
		return "paletted"
	}
	return "unknown"
}

func colorDepth(m color.Model) string {
	switch m {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model, color.Alpha16Model:
		return "16-bit"
	default:
		return "8-bit"
	}
}

func hasAlpha(m color.Model) bool {
	switch m {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model, color.NYCbCrAModel:
		return true
	}
	return false
}
