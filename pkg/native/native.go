// Package native is the in-process windowing layer the Facet builders
// target. It models the handle kinds, grid placement, value cells and
// the blocking event loop of a desktop toolkit without doing any
// rendering or layout math; placement and visibility are recorded so
// the rest of the system (and tests) can observe them.
//
// All handles assume exclusive, sequential access from the thread that
// owns them. Nothing here is safe for concurrent mutation.
package native

// Handle is the opaque native object reference held by a built element.
type Handle interface {
	// Kind returns the native kind tag, e.g. "window" or "entry".
	Kind() string
}

// Destroyer is implemented by handles that own native resources.
type Destroyer interface {
	Destroy()
}

// container is implemented by handles that parent other handles.
type container interface {
	addChild(Handle)
}

// baseWidget carries the state shared by every placeable handle:
// its parent, its grid cell and its visibility.
type baseWidget struct {
	parent    Handle
	children  []Handle
	destroyed bool

	placed  bool
	removed bool
	row     int
	col     int
}

func (w *baseWidget) addChild(child Handle) {
	w.children = append(w.children, child)
}

// attach registers child with parent's child list when the parent is a
// container handle.
func attach(parent Handle, child Handle) {
	if c, ok := parent.(container); ok {
		c.addChild(child)
	}
}

// Place records the widget's grid cell. Padding arguments are accepted
// for interface parity with real toolkits and otherwise ignored.
func (w *baseWidget) Place(row, col int, pad ...float64) {
	w.placed = true
	w.removed = false
	w.row = row
	w.col = col
}

// GridRemove hides the widget while remembering its grid cell.
func (w *baseWidget) GridRemove() {
	w.removed = true
}

// GridRestore shows the widget again in its remembered cell.
func (w *baseWidget) GridRestore() {
	w.removed = false
}

// Visible reports whether the widget is currently placed and not
// removed from the grid.
func (w *baseWidget) Visible() bool {
	return w.placed && !w.removed
}

// Row returns the widget's grid row.
func (w *baseWidget) Row() int { return w.row }

// Col returns the widget's grid column.
func (w *baseWidget) Col() int { return w.col }

// Destroy releases the widget and, recursively, every descendant.
func (w *baseWidget) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	for _, child := range w.children {
		if d, ok := child.(Destroyer); ok {
			d.Destroy()
		}
	}
}

// Destroyed reports whether the widget has been released.
func (w *baseWidget) Destroyed() bool { return w.destroyed }
