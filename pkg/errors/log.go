package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
}

var (
	handlerMu sync.RWMutex
	handler   Handler = &LogHandler{}
)

// SetHandler installs the global error handler. Passing nil restores the
// default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
}

// Report forwards err to the global handler. Nil errors are ignored.
func Report(err *Error) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h.HandleError(err)
}

// LogHandler is a Handler that logs errors to a writer (stderr by default).
type LogHandler struct {
	// Verbose enables detailed output including the full error chain.
	Verbose bool
	// Out overrides the destination writer.
	Out io.Writer
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	if h.Verbose {
		fmt.Fprintf(out, "[facet error] %s [%s]", err.Op, err.Kind)
		if err.Element != "" {
			fmt.Fprintf(out, " element=%s", err.Element)
		}
		fmt.Fprintf(out, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(out, "[facet error] %s: %v\n", err.Op, err.Err)
	}
}
