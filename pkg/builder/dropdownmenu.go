package builder

import (
	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// DropDownMenuBuilder builds a cascading menu inside a menu bar.
type DropDownMenuBuilder struct{}

func (DropDownMenuBuilder) Build(ctx *Context) (*element.Record, error) {
	parent, ok := ctx.Parent.(*native.Menu)
	if !ok {
		err := facerr.Errorf("builder.DropDownMenu", facerr.KindInvalidParentType,
			"drop-down menu parent must be a menu bar, got %T", ctx.Parent)
		err.Element = ctx.Name
		return nil, err
	}

	keys := ctx.Keys
	visibleText := ctx.Properties.String(keys.VisibleText, "Menu")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)

	menu := native.NewMenu(parent)
	parent.AddCascade(visibleText, menu)

	return newRecord(ctx, "drop_down_menu", menu, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       true,
		OnNewRow:      false,
		Specific: element.Properties{
			keys.VisibleText: visibleText,
		},
	}), nil
}
