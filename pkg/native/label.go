package native

// Label is static single-line text.
type Label struct {
	baseWidget

	text          string
	justification string
}

// NewLabel creates a label owned by parent. Justification is "left",
// "right" or "center".
func NewLabel(parent Handle, text, justification string) *Label {
	l := &Label{text: text, justification: justification}
	l.parent = parent
	attach(parent, l)
	return l
}

func (l *Label) Kind() string { return "label" }

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text.
func (l *Label) SetText(text string) { l.text = text }

// Justification returns the text justification.
func (l *Label) Justification() string { return l.justification }
