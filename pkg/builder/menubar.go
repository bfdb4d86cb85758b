package builder

import (
	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// MenuBarBuilder builds the menu bar at the top of a window. Unlike
// in-window elements, a menu bar is never grid-placed, so the
// on_new_row and column properties are ignored.
type MenuBarBuilder struct{}

func (MenuBarBuilder) Build(ctx *Context) (*element.Record, error) {
	window, ok := ctx.Parent.(*native.Window)
	if !ok {
		err := facerr.Errorf("builder.MenuBar", facerr.KindInvalidParentType,
			"menu bar parent must be a window, got %T", ctx.Parent)
		err.Element = ctx.Name
		return nil, err
	}

	keys := ctx.Keys
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)

	menubar := native.NewMenu(window)
	window.SetMenu(menubar)

	return newRecord(ctx, "menu_bar", menubar, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       true,
		OnNewRow:      false,
	}), nil
}
