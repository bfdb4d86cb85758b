package native

// Button is a clickable button with a single command callback.
type Button struct {
	baseWidget

	text    string
	command func()
}

// NewButton creates a button owned by parent showing text.
func NewButton(parent Handle, text string, command func()) *Button {
	b := &Button{text: text, command: command}
	b.parent = parent
	attach(parent, b)
	return b
}

func (b *Button) Kind() string { return "button" }

// Text returns the button's label.
func (b *Button) Text() string { return b.text }

// SetCommand replaces the click callback.
func (b *Button) SetCommand(command func()) { b.command = command }

// Invoke simulates a click.
func (b *Button) Invoke() {
	if b.command != nil {
		b.command()
	}
}
