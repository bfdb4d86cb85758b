package native

// Frame is a labeled or plain container for other widgets.
type Frame struct {
	baseWidget

	label  string
	width  int
	height int
}

// NewFrame creates a frame owned by parent. An empty label makes a
// plain frame.
func NewFrame(parent Handle, label string, width, height int) *Frame {
	f := &Frame{label: label, width: width, height: height}
	f.parent = parent
	attach(parent, f)
	return f
}

func (f *Frame) Kind() string { return "frame" }

// Label returns the text shown in the frame's border.
func (f *Frame) Label() string { return f.label }

// Children returns the handles parented by this frame.
func (f *Frame) Children() []Handle { return f.children }
