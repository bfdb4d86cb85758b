package admin

import (
	"fmt"

	"github.com/go-facet/facet/pkg/native"
)

// DummyManager absorbs duties nothing handles. It reports what was
// dropped so misrouted duties are visible during development.
type DummyManager struct{}

func (DummyManager) Manage(req *Request) error {
	fmt.Fprintf(req.Diagnostics, "no manager took the duty targeting %q\n", req.Target)
	return nil
}

// EventLoopManager blocks in the main loop of every top-level window,
// one after another, until each is destroyed.
type EventLoopManager struct{}

func (EventLoopManager) Manage(req *Request) error {
	for _, window := range topLevelWindows(req) {
		window.MainLoop()
	}
	return nil
}

// QuitCloseManager destroys every top-level window, cascading through
// all descendant widgets and unblocking any pending main loop.
type QuitCloseManager struct{}

func (QuitCloseManager) Manage(req *Request) error {
	for _, window := range topLevelWindows(req) {
		window.Destroy()
	}
	return nil
}

func topLevelWindows(req *Request) []*native.Window {
	var windows []*native.Window
	for _, rec := range req.Records {
		if w, ok := rec.Widget.(*native.Window); ok {
			windows = append(windows, w)
		}
	}
	return windows
}
