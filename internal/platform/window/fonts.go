package window

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace builds a font face of the given size. An empty name selects the
// built-in Go Regular font; anything else is read as a TrueType file path.
func LoadFace(name string, size float64) (font.Face, error) {
	ttf := goregular.TTF
	if name != "" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("window: read font %q: %w", name, err)
		}
		ttf = data
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("window: parse font %q: %w", name, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// textWidth returns the advance width of s in pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// ascent returns the distance from the top of a line to its baseline.
func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
