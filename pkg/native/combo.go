package native

// Combo is a drop-down selection field backed by a Var. A read-only
// combo restricts the user to the listed options; otherwise arbitrary
// text may be typed.
type Combo struct {
	baseWidget

	variable *Var
	options  []string
	readonly bool
	width    int
	font     string
	onSelect func()
}

// NewCombo creates a combo box owned by parent, editing variable.
func NewCombo(parent Handle, variable *Var, options []string, width int, font string) *Combo {
	c := &Combo{variable: variable, options: options, width: width, font: font}
	c.parent = parent
	attach(parent, c)
	return c
}

func (c *Combo) Kind() string { return "combo" }

// Variable returns the backing cell.
func (c *Combo) Variable() *Var { return c.variable }

// Options returns the selectable values.
func (c *Combo) Options() []string { return c.options }

// SetReadonly restricts editing to option selection.
func (c *Combo) SetReadonly(readonly bool) { c.readonly = readonly }

// Readonly reports whether free text entry is disabled.
func (c *Combo) Readonly() bool { return c.readonly }

// SetOnSelect installs the selection-changed callback.
func (c *Combo) SetOnSelect(action func()) { c.onSelect = action }

// Select sets the current value to the option at index and fires the
// selection callback. Free-text assignment goes through Variable.
func (c *Combo) Select(index int) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.variable.Set(c.options[index])
	if c.onSelect != nil {
		c.onSelect()
	}
}
