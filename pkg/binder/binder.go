// Package binder wires event callbacks onto live widgets after a tree
// has been built, through a registry keyed by event type.
package binder

import (
	"fmt"
	"io"
	"os"

	"github.com/go-facet/facet/pkg/builder"
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/errors"
)

// Binder attaches one kind of event callback to a record's widget.
type Binder interface {
	Bind(rec *element.Record, action func(), diagnostics io.Writer) error
}

// Workshop holds the binder registry and the key vocabulary. Records
// are dispatched on their event_type property; an event type with no
// registered binder is an error, there is no fallback.
type Workshop struct {
	binders     map[string]Binder
	keys        element.Keys
	diagnostics io.Writer
}

// NewWorkshop creates an empty workshop with the given key vocabulary.
func NewWorkshop(keys element.Keys) *Workshop {
	return &Workshop{
		binders:     map[string]Binder{},
		keys:        keys,
		diagnostics: os.Stdout,
	}
}

// SetDiagnostics redirects binder diagnostic output.
func (w *Workshop) SetDiagnostics(out io.Writer) {
	if out != nil {
		w.diagnostics = out
	}
}

// Register associates a binder with an event type, silently
// overwriting any previous registration.
func (w *Workshop) Register(eventType string, b Binder) {
	w.binders[eventType] = b
}

// Apply walks records and binds every one of them through the binder
// registered for its event type. The callback comes from the action
// table under the record's action property; missing actions bind nil
// and each binder decides what that means.
func (w *Workshop) Apply(records []*element.Record, actions builder.ActionTable) error {
	var failure error
	element.Walk(records, func(rec *element.Record) bool {
		eventType := rec.Properties.String(w.keys.EventType, "NoneType")
		b, ok := w.binders[eventType]
		if !ok {
			failure = &errors.Error{
				Op:      "binder.Apply",
				Kind:    errors.KindUnboundEventType,
				Element: rec.Name,
				Err:     fmt.Errorf("no binder for event type %q", eventType),
			}
			return false
		}
		var action func()
		if name, ok := rec.Properties.Get(w.keys.Action, nil).(string); ok {
			action = actions[name]
		}
		if err := b.Bind(rec, action, w.diagnostics); err != nil {
			failure = err
			return false
		}
		return true
	})
	return failure
}
