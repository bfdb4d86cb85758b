package theme

import (
	"testing"

	"golang.org/x/image/colornames"
)

func TestDefault(t *testing.T) {
	a := Default()
	if a.EntryWidth != 15 {
		t.Errorf("EntryWidth = %d", a.EntryWidth)
	}
	if a.Font != "arial 14" {
		t.Errorf("Font = %q", a.Font)
	}
	if a.PadX != 1.25 || a.PadY != 2.5 {
		t.Errorf("padding = %v, %v", a.PadX, a.PadY)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("SteelBlue")
	if err != nil {
		t.Fatalf("ParseColor(SteelBlue): %v", err)
	}
	if c != colornames.Steelblue {
		t.Errorf("ParseColor(SteelBlue) = %v", c)
	}

	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("unknown color name should error")
	}
}
