package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// ButtonBuilder builds clickable buttons. The click callback is
// resolved from the action table at build time; the button_press
// binder can rebind it later.
type ButtonBuilder struct{}

func (ButtonBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	visibleText := ctx.Properties.String(keys.VisibleText, "Default Button Text")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	action := ctx.Properties.String(keys.Action, "print")
	eventType := ctx.Properties.String(keys.EventType, "button_press")
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)

	parent, _ := ctx.Parent.(native.Handle)
	button := native.NewButton(parent, visibleText, ctx.Action(action))
	button.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	return newRecord(ctx, "button", button, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     eventType,
		Action:        action,
		Visible:       ctx.Properties.Get(keys.Visible, true),
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
		Specific: element.Properties{
			keys.VisibleText: visibleText,
		},
	}), nil
}
