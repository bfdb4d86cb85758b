package builder

import (
	"io"
	"os"

	"github.com/go-facet/facet/pkg/element"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/theme"
)

// Factory walks configuration records and dispatches each to the
// builder registered for its type tag, assembling the live element
// tree depth-first in pre-order.
type Factory struct {
	builders    map[string]Builder
	keys        element.Keys
	aesthetics  theme.Aesthetics
	diagnostics io.Writer
}

// New creates an empty factory with the given key vocabulary and
// appearance defaults.
func New(keys element.Keys, aesthetics theme.Aesthetics) *Factory {
	return &Factory{
		builders:    map[string]Builder{},
		keys:        keys,
		aesthetics:  aesthetics,
		diagnostics: os.Stdout,
	}
}

// SetDiagnostics redirects builder diagnostic output (stdout by
// default).
func (f *Factory) SetDiagnostics(w io.Writer) {
	f.diagnostics = w
}

// Register associates a builder with a type tag, silently overwriting
// any previous registration for that tag.
func (f *Factory) Register(typeTag string, b Builder) {
	f.builders[typeTag] = b
}

// Aesthetics returns the factory's appearance defaults.
func (f *Factory) Aesthetics() theme.Aesthetics {
	return f.aesthetics
}

// Create builds the whole tree described by config, attaching top-level
// widgets to parent (usually nil). Widgets are instantiated in
// traversal order; the returned records own them.
func (f *Factory) Create(config []*element.Record, actions ActionTable, parent any) ([]*element.Record, error) {
	return f.create(config, actions, parent, 0)
}

func (f *Factory) create(config []*element.Record, actions ActionTable, parent any, level int) ([]*element.Record, error) {
	built := make([]*element.Record, 0, len(config))
	row, col := 0, 0

	for _, rec := range config {
		row, col = f.locate(rec, row, col)

		b, ok := f.builders[rec.Type]
		if !ok {
			err := facerr.Errorf("factory.Create", facerr.KindUnknownElementType,
				"no builder registered for type %q", rec.Type)
			err.Element = rec.Name
			return nil, err
		}

		node, err := b.Build(&Context{
			Name:        rec.Name,
			Properties:  rec.Properties,
			Parent:      parent,
			Row:         row,
			Col:         col,
			Level:       level,
			Actions:     actions,
			Keys:        f.keys,
			Aesthetics:  f.aesthetics,
			Diagnostics: f.diagnostics,
		})
		if err != nil {
			return nil, err
		}

		children, err := f.create(rec.Children, actions, node.Widget, level+1)
		if err != nil {
			return nil, err
		}
		node.Children = children

		built = append(built, node)
		col++
	}
	return built, nil
}

// locate resolves a record's grid cell. A truthy on_new_row advances
// the row and resets the column to the record's explicit column
// (default 0); otherwise the record stays on the current row in its
// explicit column or the running default.
func (f *Factory) locate(rec *element.Record, row, defaultCol int) (int, int) {
	keys := f.keys
	if element.Truthy(rec.Properties.Get(keys.OnNewRow, nil)) {
		return row + 1, rec.Properties.Int(keys.Column, 0)
	}
	return row, rec.Properties.Int(keys.Column, defaultCol)
}
