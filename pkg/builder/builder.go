// Package builder turns configuration records into live native widgets
// through a registry of per-type builders driven by the Factory.
package builder

import (
	"io"

	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/theme"
)

// ActionTable maps action names from configuration to live callbacks.
type ActionTable map[string]func()

// Context carries everything a builder needs for one record: the
// record's identity and properties, its resolved grid cell, the parent
// handle to attach to, the action table and the injected key vocabulary
// and aesthetics.
type Context struct {
	// Name is the record's unique lookup name.
	Name string
	// Properties holds the record's configuration.
	Properties element.Properties
	// Parent is the native handle of the enclosing element, nil at the
	// top level.
	Parent any
	// Row and Col are the resolved grid cell.
	Row int
	Col int
	// Level is the tree depth, used for diagnostic indentation.
	Level int
	// Actions resolves action names to callbacks.
	Actions ActionTable
	// Keys is the property-key vocabulary.
	Keys element.Keys
	// Aesthetics holds the factory's appearance defaults.
	Aesthetics theme.Aesthetics
	// Diagnostics receives builder diagnostic output.
	Diagnostics io.Writer
}

// Action returns the callback registered under name, or nil when name
// is not a string or not in the table.
func (ctx *Context) Action(name any) func() {
	s, ok := name.(string)
	if !ok {
		return nil
	}
	return ctx.Actions[s]
}

// Builder instantiates one kind of native widget from an element's
// configuration. Builders are called exactly once per record and are
// not expected to be safely re-callable on the same record.
type Builder interface {
	Build(ctx *Context) (*element.Record, error)
}

// recordSpec gathers the standard property slots every built record
// carries; builders fill it alongside their type-specific properties.
type recordSpec struct {
	ParameterName any
	Activator     string
	RequiredValue any
	EventType     string
	Action        any
	Visible       any
	OnNewRow      any
	Column        int
	Specific      element.Properties
}

// newRecord assembles the standard record shape from a builder's
// results: common properties, type-specific properties, the live
// widget and the parameter cell.
func newRecord(ctx *Context, typeTag string, widget, parameter any, spec recordSpec) *element.Record {
	keys := ctx.Keys
	props := element.Properties{
		keys.ParameterName: spec.ParameterName,
		keys.Activator:     spec.Activator,
		keys.RequiredValue: spec.RequiredValue,
		keys.EventType:     spec.EventType,
		keys.Action:        spec.Action,
		keys.Visible:       spec.Visible,
		keys.OnNewRow:      spec.OnNewRow,
		keys.Column:        spec.Column,
	}
	for k, v := range spec.Specific {
		props[k] = v
	}
	return &element.Record{
		Type:       typeTag,
		Name:       ctx.Name,
		Properties: props,
		Children:   []*element.Record{},
		Widget:     widget,
		Parameter:  parameter,
	}
}

// AlwaysReadable is the activator name elements default to when their
// readability is not gated on another parameter.
const AlwaysReadable = "always_readable"
