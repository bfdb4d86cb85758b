package builder

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// DropDownBuilder builds a drop-down selection field with a static
// label beside it. The record's widget is the containing frame; the
// parameter is the combo's backing variable.
type DropDownBuilder struct{}

func (DropDownBuilder) Build(ctx *Context) (*element.Record, error) {
	keys := ctx.Keys

	options := optionStrings(ctx.Properties.Get(keys.Options, nil))
	if len(options) == 0 {
		options = []string{"Default_Option"}
	}
	defaultOption := ctx.Properties.Get(keys.DefaultOption, nil)
	onlySelectable := ctx.Properties.Get(keys.OnlySelectable, true)
	width := ctx.Properties.Int(keys.Width, 40)
	parameterName := ctx.Properties.String(keys.ParameterName, "default_parameter_name")
	activator := ctx.Properties.String(keys.Activator, AlwaysReadable)
	requiredValue := ctx.Properties.Get(keys.RequiredValue, true)
	action := ctx.Properties.Get(keys.Action, nil)
	onNewRow := ctx.Properties.Get(keys.OnNewRow, false)
	visibleText := ctx.Properties.String(keys.VisibleText, "Default drop-down text")

	parent, _ := ctx.Parent.(native.Handle)
	variable := native.NewVar("")
	frame := native.NewFrame(parent, "", 0, 0)
	label := native.NewLabel(frame, visibleText, "left")
	dropdown := native.NewCombo(frame, variable, options, width, ctx.Aesthetics.Font)

	if s, ok := defaultOption.(string); ok && s != "" {
		variable.Set(s)
	} else {
		variable.Set(options[0])
	}
	if element.Truthy(onlySelectable) {
		dropdown.SetReadonly(true)
	}
	if callback := ctx.Action(action); callback != nil {
		dropdown.SetOnSelect(callback)
	}

	dropdown.Place(0, 0)
	label.Place(0, 1)
	frame.Place(ctx.Row, ctx.Col, ctx.Aesthetics.PadX, ctx.Aesthetics.PadY)

	return newRecord(ctx, "drop_down", frame, variable, recordSpec{
		ParameterName: parameterName,
		Activator:     activator,
		RequiredValue: requiredValue,
		EventType:     "NoneType",
		Action:        action,
		Visible:       ctx.Properties.Get(keys.Visible, true),
		OnNewRow:      onNewRow,
		Column:        ctx.Col,
		Specific: element.Properties{
			keys.VisibleText:    visibleText,
			keys.Width:          width,
			keys.Options:        ctx.Properties.Get(keys.Options, options),
			keys.OnlySelectable: onlySelectable,
			keys.DefaultOption:  defaultOption,
		},
	}), nil
}

// optionStrings normalizes the options property: JSON arrays arrive as
// []any, hand-built configs may use []string, and a bare string counts
// as a single option.
func optionStrings(v any) []string {
	switch opts := v.(type) {
	case []string:
		return opts
	case []any:
		out := make([]string, 0, len(opts))
		for _, o := range opts {
			if s, ok := o.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if opts == "" {
			return nil
		}
		return []string{opts}
	default:
		return nil
	}
}
