package reader

import (
	"fmt"

	"github.com/go-facet/facet/pkg/native"
)

// Getter extracts the current value from a built element's parameter
// cell.
type Getter interface {
	Get(parameter any) any
}

// NoneGetter reads nothing. It backs the "NoneType" tag and every
// element type without a registered getter.
type NoneGetter struct{}

func (NoneGetter) Get(parameter any) any { return nil }

// VarGetter reads the current value of a variable-backed field (entry,
// drop_down). Non-variable parameters are stringified.
type VarGetter struct{}

func (VarGetter) Get(parameter any) any {
	switch v := parameter.(type) {
	case *native.Var:
		return v.Get()
	case nil:
		return nil
	default:
		return fmt.Sprint(v)
	}
}

// TextGetter reads the full contents of a text box.
type TextGetter struct{}

func (TextGetter) Get(parameter any) any {
	if box, ok := parameter.(*native.TextBox); ok {
		return box.Text()
	}
	return nil
}

// LiteralGetter returns the parameter cell as-is. Windows use it: their
// parameter is the literal true backing the "always_readable"
// activator.
type LiteralGetter struct{}

func (LiteralGetter) Get(parameter any) any { return parameter }

// DefaultGetters returns the stock getter registry.
func DefaultGetters() map[string]Getter {
	return map[string]Getter{
		"NoneType":  NoneGetter{},
		"entry":     VarGetter{},
		"drop_down": VarGetter{},
		"text_box":  TextGetter{},
		"window":    LiteralGetter{},
	}
}
