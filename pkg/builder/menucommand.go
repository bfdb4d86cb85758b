package builder

import (
	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// MenuCommandBuilder builds a command entry in a drop-down menu. The
// entry lives in its parent menu; the record carries no widget of its
// own.
type MenuCommandBuilder struct{}

func (MenuCommandBuilder) Build(ctx *Context) (*element.Record, error) {
	parent, ok := ctx.Parent.(*native.Menu)
	if !ok {
		err := facerr.Errorf("builder.MenuCommand", facerr.KindInvalidParentType,
			"menu command parent must be a menu, got %T", ctx.Parent)
		err.Element = ctx.Name
		return nil, err
	}

	keys := ctx.Keys
	visibleText := ctx.Properties.String(keys.VisibleText, "Default Command Label")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	action := ctx.Properties.String(keys.Action, "print")

	parent.AddCommand(visibleText, ctx.Action(action))

	return newRecord(ctx, "menu_command", nil, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        action,
		Visible:       true,
		OnNewRow:      false,
		Specific: element.Properties{
			keys.VisibleText: visibleText,
		},
	}), nil
}
