package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// FrameBuilder builds labeled container frames inside a window.
type FrameBuilder struct{}

func (FrameBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)
	visibleText := ctx.Properties.String(keys.VisibleText, "")
	width := ctx.Properties.Int(keys.Width, 500)
	height := ctx.Properties.Int(keys.Height, 20)

	parent, _ := ctx.Parent.(native.Handle)
	frame := native.NewFrame(parent, visibleText, width, height)
	frame.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	return newRecord(ctx, "frame", frame, nil, recordSpec{
		ParameterName: nil,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       true,
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
		Specific: element.Properties{
			keys.VisibleText: visibleText,
			keys.Width:       width,
			keys.Height:      height,
		},
	}), nil
}
