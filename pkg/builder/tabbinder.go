package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// TabBinderBuilder builds the notebook container that tab elements are
// added to.
type TabBinderBuilder struct{}

func (TabBinderBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)

	parent, _ := ctx.Parent.(native.Handle)
	binder := native.NewNotebook(parent)
	binder.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	return newRecord(ctx, "tab_binder", binder, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       true,
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
	}), nil
}
