package native

// Var is a mutable string cell backing an entry or combo box, the
// toolkit's equivalent of a traced text variable.
type Var struct {
	value string
}

// NewVar creates a cell holding value.
func NewVar(value string) *Var {
	return &Var{value: value}
}

// Get returns the cell's current value.
func (v *Var) Get() string { return v.value }

// Set replaces the cell's value.
func (v *Var) Set(value string) { v.value = value }

// Entry is a dynamic single-line text field backed by a Var.
type Entry struct {
	baseWidget

	variable *Var
	width    int
	font     string
}

// NewEntry creates an entry owned by parent, editing variable.
func NewEntry(parent Handle, variable *Var, width int, font string) *Entry {
	e := &Entry{variable: variable, width: width, font: font}
	e.parent = parent
	attach(parent, e)
	return e
}

func (e *Entry) Kind() string { return "entry" }

// Variable returns the backing cell.
func (e *Entry) Variable() *Var { return e.variable }

// Text returns the current contents.
func (e *Entry) Text() string { return e.variable.Get() }

// Insert inserts content at the character index, clamped to the
// current contents.
func (e *Entry) Insert(index int, content string) {
	text := e.variable.Get()
	if index < 0 {
		index = 0
	}
	if index > len(text) {
		index = len(text)
	}
	e.variable.Set(text[:index] + content + text[index:])
}

// DeleteAll clears the contents.
func (e *Entry) DeleteAll() {
	e.variable.Set("")
}

// Width returns the field width in characters.
func (e *Entry) Width() int { return e.width }
