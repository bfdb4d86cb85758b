package native

// Window is a top-level native window. It owns the event loop and the
// close protocol and cascades destruction to every descendant handle.
type Window struct {
	baseWidget

	title       string
	geometry    Geometry
	menu        *Menu
	closeAction func()

	done    chan struct{}
	redraws int
}

// NewWindow creates a window with the given title and geometry.
func NewWindow(title string, geometry Geometry) *Window {
	return &Window{
		title:    title,
		geometry: geometry,
		done:     make(chan struct{}),
	}
}

func (w *Window) Kind() string { return "window" }

// Title returns the title-bar text.
func (w *Window) Title() string { return w.title }

// SetTitle sets the title-bar text.
func (w *Window) SetTitle(title string) { w.title = title }

// Geometry returns the window's size and position.
func (w *Window) Geometry() Geometry { return w.geometry }

// SetGeometry moves and resizes the window.
func (w *Window) SetGeometry(g Geometry) { w.geometry = g }

// SetMenu attaches a menu bar to the top of the window.
func (w *Window) SetMenu(m *Menu) { w.menu = m }

// Menu returns the attached menu bar, or nil.
func (w *Window) Menu() *Menu { return w.menu }

// SetCloseAction installs the close-protocol callback invoked when the
// user asks the window to close.
func (w *Window) SetCloseAction(action func()) { w.closeAction = action }

// RequestClose runs the close protocol. Without an installed action the
// window is destroyed directly.
func (w *Window) RequestClose() {
	if w.closeAction != nil {
		w.closeAction()
		return
	}
	w.Destroy()
}

// Destroy releases the window and all descendant handles and unblocks
// MainLoop.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.baseWidget.Destroy()
	close(w.done)
}

// MainLoop blocks until the window is destroyed. This is the only
// suspending operation in the toolkit; construction, reading and
// administration all run on the thread that enters it.
func (w *Window) MainLoop() {
	<-w.done
}

// UpdateIdleTasks forces a redraw of pending geometry changes.
func (w *Window) UpdateIdleTasks() {
	w.redraws++
}

// Redraws returns how many idle-task flushes have been requested.
func (w *Window) Redraws() int { return w.redraws }

// Windows are top-level: Visible is true until destruction.
func (w *Window) Visible() bool { return !w.destroyed }
