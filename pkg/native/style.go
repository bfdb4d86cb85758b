package native

// The style table maps widget classes ("Label", "Button", "Combo",
// "Notebook.Tab") to font specifications, mirroring how a themed
// toolkit styles whole classes at once rather than single widgets.
var styleTable = map[string]string{}

// StyleConfigure sets the font for a widget class.
func StyleConfigure(class, font string) {
	styleTable[class] = font
}

// StyleOf returns the configured font for a widget class, or "".
func StyleOf(class string) string {
	return styleTable[class]
}

// ResetStyles clears the style table. Intended for tests.
func ResetStyles() {
	styleTable = map[string]string{}
}
