package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// TextLineBuilder builds static single-line text.
type TextLineBuilder struct{}

func (TextLineBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	visibleText := ctx.Properties.String(keys.VisibleText, "Default text")
	justification := ctx.Properties.String(keys.Justification, "left")
	visible := ctx.Properties.Get(keys.Visible, true)
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)

	parent, _ := ctx.Parent.(native.Handle)
	text := native.NewLabel(parent, visibleText, justification)
	text.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	initiallyVisible := element.Truthy(visible)
	if !initiallyVisible {
		text.GridRemove()
	}

	return newRecord(ctx, "text_line", text, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       initiallyVisible,
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
		Specific: element.Properties{
			keys.VisibleText:   visibleText,
			keys.Justification: justification,
		},
	}), nil
}
