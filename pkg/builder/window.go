package builder

import (
	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// WindowBuilder builds top-level windows. A window's parameter is the
// literal true: always present, never surfaced by the generic reader
// because boolean values are excluded from read results.
type WindowBuilder struct{}

func (WindowBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	geometrySpec := ctx.Properties.String(keys.SizeAndPosition, "1040x640+0+0")
	title := ctx.Properties.String(keys.VisibleText, "Default Window Title")
	parameterName := ctx.Properties.String(keys.ParameterName, AlwaysReadable)
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	eventType := ctx.Properties.String(keys.EventType, "window_close")
	action := ctx.Properties.String(keys.Action, "exit")

	geometry, err := native.ParseGeometry(geometrySpec)
	if err != nil {
		e := facerr.E("builder.Window", facerr.KindConfig, err)
		e.Element = ctx.Name
		return nil, e
	}

	window := native.NewWindow(title, geometry)
	window.SetCloseAction(ctx.Action(action))

	return newRecord(ctx, "window", window, true, recordSpec{
		ParameterName: parameterName,
		Activator:     activator,
		RequiredValue: false, // windows carry no readable parameter
		EventType:     eventType,
		Action:        action,
		Visible:       true,
		OnNewRow:      false,
		Specific: element.Properties{
			keys.VisibleText:     title,
			keys.SizeAndPosition: geometrySpec,
		},
	}), nil
}
