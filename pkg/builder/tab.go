package builder

import (
	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// TabBuilder builds one tab page inside a tab binder. The tab's column
// property records its index in the notebook.
type TabBuilder struct{}

func (TabBuilder) Build(ctx *Context) (*element.Record, error) {
	notebook, ok := ctx.Parent.(*native.Notebook)
	if !ok {
		err := facerr.Errorf("builder.Tab", facerr.KindInvalidParentType,
			"cannot add a tab to %T, ensure its parent is a tab_binder", ctx.Parent)
		err.Element = ctx.Name
		return nil, err
	}

	keys := ctx.Keys
	visibleText := ctx.Properties.String(keys.VisibleText, "Default Tab Label")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)

	frame := native.NewFrame(notebook, "", 0, 0)
	frame.Place(0, 0)
	index := notebook.Add(frame, visibleText)

	return newRecord(ctx, "tab", frame, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       true,
		OnNewRow:      false,
		Column:        index,
		Specific: element.Properties{
			keys.VisibleText: visibleText,
		},
	}), nil
}
