package native

// Notebook holds a row of tabs, each wrapping a frame of content.
type Notebook struct {
	baseWidget

	tabs   []*Frame
	labels []string
}

// NewNotebook creates an empty notebook owned by parent.
func NewNotebook(parent Handle) *Notebook {
	n := &Notebook{}
	n.parent = parent
	attach(parent, n)
	return n
}

func (n *Notebook) Kind() string { return "notebook" }

// Add appends frame as a new tab shown under label and returns its
// index.
func (n *Notebook) Add(frame *Frame, label string) int {
	n.tabs = append(n.tabs, frame)
	n.labels = append(n.labels, label)
	return len(n.tabs) - 1
}

// Index returns the tab position of frame, or -1.
func (n *Notebook) Index(frame *Frame) int {
	for i, tab := range n.tabs {
		if tab == frame {
			return i
		}
	}
	return -1
}

// Tabs returns the tab frames in order.
func (n *Notebook) Tabs() []*Frame { return n.tabs }

// Labels returns the tab labels in order.
func (n *Notebook) Labels() []string { return n.labels }
