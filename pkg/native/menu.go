package native

// MenuEntry is one item in a menu: either a cascading submenu or a
// command with a callback.
type MenuEntry struct {
	Label   string
	Submenu *Menu
	Command func()
}

// Menu is a menu bar or a drop-down menu within one. Menus are not
// grid-placed; a bar attaches to a window, a drop-down cascades from
// its parent menu.
type Menu struct {
	baseWidget

	entries []MenuEntry
}

// NewMenu creates an empty menu owned by parent.
func NewMenu(parent Handle) *Menu {
	m := &Menu{}
	m.parent = parent
	attach(parent, m)
	return m
}

func (m *Menu) Kind() string { return "menu" }

// AddCascade appends a submenu entry shown under label.
func (m *Menu) AddCascade(label string, submenu *Menu) {
	m.entries = append(m.entries, MenuEntry{Label: label, Submenu: submenu})
}

// AddCommand appends a command entry that runs action when selected.
func (m *Menu) AddCommand(label string, action func()) {
	m.entries = append(m.entries, MenuEntry{Label: label, Command: action})
}

// Entries returns the menu's items in order.
func (m *Menu) Entries() []MenuEntry { return m.entries }

// Invoke runs the command at index. It is a no-op for cascades and
// out-of-range indexes.
func (m *Menu) Invoke(index int) {
	if index < 0 || index >= len(m.entries) {
		return
	}
	if cmd := m.entries[index].Command; cmd != nil {
		cmd()
	}
}
