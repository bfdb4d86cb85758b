package native

import (
	"fmt"
	"regexp"
	"strconv"
)

// Geometry is a window's size and screen position. X grows rightward
// from the left edge, Y grows downward from the top.
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

var geometryPattern = regexp.MustCompile(`^(\d+)x(\d+)\+(\d+)\+(\d+)$`)

// ParseGeometry parses the "[width]x[height]+[x]+[y]" form used by
// window configuration, e.g. "1040x640+0+0".
func ParseGeometry(s string) (Geometry, error) {
	m := geometryPattern.FindStringSubmatch(s)
	if m == nil {
		return Geometry{}, fmt.Errorf("malformed geometry %q", s)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	return Geometry{Width: w, Height: h, X: x, Y: y}, nil
}

// String formats the geometry back into the configuration form.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}
