// Package theme holds the appearance defaults shared by the Facet
// builders and the style manager.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Aesthetics is the explicit appearance configuration handed to the
// factory at construction and passed to each builder. It replaces any
// shared mutable defaults: two factories can carry different aesthetics
// without affecting each other.
type Aesthetics struct {
	// EntryWidth is the default entry box width in characters.
	EntryWidth int
	// Font is the font specification, e.g. "arial 14" or "arial 14 bold".
	Font string
	// PadX is the default horizontal external padding in pixels.
	PadX float64
	// PadY is the default vertical external padding in pixels.
	PadY float64
	// Foreground is the default text color.
	Foreground color.RGBA
	// Background is the default widget background color.
	Background color.RGBA
}

// Default returns the stock appearance settings.
func Default() Aesthetics {
	return Aesthetics{
		EntryWidth: 15,
		Font:       "arial 14",
		PadX:       1.25,
		PadY:       2.5,
		Foreground: colornames.Black,
		Background: colornames.White,
	}
}

// ParseColor resolves an SVG 1.1 color name ("steelblue", "Gray") to
// its RGBA value.
func ParseColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", name)
	}
	return c, nil
}
