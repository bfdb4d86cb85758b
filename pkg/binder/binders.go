package binder

import (
	"fmt"
	"io"

	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// GenericBinder handles elements that carry no bindable event. It
// reports what it skipped so silently inert configurations are
// visible during development.
type GenericBinder struct{}

func (GenericBinder) Bind(rec *element.Record, _ func(), diagnostics io.Writer) error {
	fmt.Fprintf(diagnostics, "no event binding for element %s\n", rec.Name)
	return nil
}

// CommandBinder installs the callback as a button press command.
type CommandBinder struct{}

func (CommandBinder) Bind(rec *element.Record, action func(), _ io.Writer) error {
	button, ok := rec.Widget.(*native.Button)
	if !ok {
		return &errors.Error{
			Op:      "binder.CommandBinder",
			Kind:    errors.KindInvalidParentType,
			Element: rec.Name,
			Err:     fmt.Errorf("button press binding needs a button widget, have %T", rec.Widget),
		}
	}
	button.SetCommand(action)
	return nil
}

// WindowCloseBinder installs the callback as the window close action,
// replacing whatever was set at build time.
type WindowCloseBinder struct{}

func (WindowCloseBinder) Bind(rec *element.Record, action func(), _ io.Writer) error {
	window, ok := rec.Widget.(*native.Window)
	if !ok {
		return &errors.Error{
			Op:      "binder.WindowCloseBinder",
			Kind:    errors.KindInvalidParentType,
			Element: rec.Name,
			Err:     fmt.Errorf("window close binding needs a window widget, have %T", rec.Widget),
		}
	}
	window.SetCloseAction(action)
	return nil
}

// DefaultBinders returns the standard registry contents keyed by the
// event types the stock builders emit.
func DefaultBinders() map[string]Binder {
	return map[string]Binder{
		"NoneType":     GenericBinder{},
		"button_press": CommandBinder{},
		"window_close": WindowCloseBinder{},
	}
}
