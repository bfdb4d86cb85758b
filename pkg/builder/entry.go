package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// ValueEntryBuilder builds a single-line value field with a static
// label beside it. The record's widget is the containing frame; the
// parameter is the entry's backing variable.
type ValueEntryBuilder struct{}

func (ValueEntryBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	parameterName := ctx.Properties.String(keys.ParameterName, "default_parameter_name")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	requiredValue := ctx.Properties.Get(keys.RequiredValue, true)
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)
	width := ctx.Properties.Int(keys.Width, ctx.Aesthetics.EntryWidth)
	visibleText := ctx.Properties.String(keys.VisibleText, "New Value Entry")
	defaultValue := ctx.Properties.String(keys.DefaultValue, "0")

	parent, _ := ctx.Parent.(native.Handle)
	frame := native.NewFrame(parent, "", 0, 0)
	frame.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	variable := native.NewVar("")
	entry := native.NewEntry(frame, variable, width, ctx.Aesthetics.Font)
	entry.Insert(0, defaultValue)
	entry.Place(0, 0)

	label := native.NewLabel(frame, visibleText, "left")
	label.Place(0, 1)

	return newRecord(ctx, "entry", frame, variable, recordSpec{
		ParameterName: parameterName,
		Activator:     activator,
		RequiredValue: requiredValue,
		EventType:     "NoneType",
		Action:        nil,
		Visible:       ctx.Properties.Get(keys.Visible, true),
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
		Specific: element.Properties{
			keys.VisibleText:  visibleText,
			keys.DefaultValue: defaultValue,
			keys.Width:        width,
		},
	}), nil
}
