package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// TextEntryBoxBuilder builds multi-line editable text boxes. The box
// sits in its own containing frame so an optional scrollbar can ride
// alongside; the record's widget is the text box itself.
type TextEntryBoxBuilder struct{}

func (TextEntryBoxBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	defaultText := ctx.Properties.String(keys.DefaultText, "")
	width := ctx.Properties.Int(keys.Width, 40)
	height := ctx.Properties.Int(keys.Height, 5)
	hasScrollbar := ctx.Properties.Get(keys.HasScrollbar, false)
	parameterName := ctx.Properties.String(keys.ParameterName, "default_text_parameter_name")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)

	parent, _ := ctx.Parent.(native.Handle)
	frame := native.NewFrame(parent, "", 0, 0)
	frame.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	text := native.NewTextBox(frame, defaultText, width, height)
	text.Place(0, 0)
	if element.Truthy(hasScrollbar) {
		text.AttachScrollbar()
	}

	return newRecord(ctx, "text_box", text, text, recordSpec{
		ParameterName: parameterName,
		Activator:     activator,
		RequiredValue: false,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       true,
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
		Specific: element.Properties{
			keys.DefaultText:  defaultText,
			keys.Width:        width,
			keys.Height:       height,
			keys.HasScrollbar: hasScrollbar,
		},
	}), nil
}
