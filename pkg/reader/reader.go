// Package reader extracts current values from built element trees,
// honoring the parameter-activation rules that gate which fields are
// live.
package reader

import (
	"reflect"

	"github.com/go-facet/facet/pkg/element"
)

// Reader holds the getter registry and the key vocabulary.
type Reader struct {
	getters map[string]Getter
	keys    element.Keys
}

// New creates an empty reader with the given key vocabulary.
func New(keys element.Keys) *Reader {
	return &Reader{getters: map[string]Getter{}, keys: keys}
}

// Register associates a getter with an element type tag, silently
// overwriting any previous registration.
func (r *Reader) Register(typeTag string, g Getter) {
	r.getters[typeTag] = g
}

// getter resolves the getter for a type tag, falling back to the
// "NoneType" registration.
func (r *Reader) getter(typeTag string) Getter {
	if g, ok := r.getters[typeTag]; ok {
		return g
	}
	if g, ok := r.getters["NoneType"]; ok {
		return g
	}
	return NoneGetter{}
}

// Read collects {parameter_name: value} pairs from records into out and
// returns it. all is the whole built tree the activation search runs
// over; passing nil reuses records. With readAll every named
// non-boolean parameter is included regardless of activation.
//
// Boolean values and anonymous parameters never appear in the output:
// boolean-backed widgets cannot surface their value through the
// generic reader and must be special-cased by callers.
func (r *Reader) Read(records, all []*element.Record, out map[string]any, readAll bool) map[string]any {
	if out == nil {
		out = map[string]any{}
	}
	if len(all) == 0 {
		all = records
	}
	keys := r.keys

	element.Walk(records, func(rec *element.Record) bool {
		active := r.isActive(all,
			rec.Properties.Get(keys.Activator, nil),
			rec.Properties.Get(keys.RequiredValue, nil))
		if !active && !readAll {
			return true
		}

		value := r.getter(rec.Type).Get(rec.Parameter)
		if _, isBool := value.(bool); isBool {
			return true
		}
		name, ok := rec.Properties.Get(keys.ParameterName, nil).(string)
		if !ok || name == "" {
			return true
		}
		out[name] = value
		return true
	})
	return out
}

// IsActive reports whether a record gated on activator having
// requiredValue is currently active. The whole tree is searched
// depth-first in pre-order for the first record whose parameter_name
// equals activator; its getter-fetched value must equal requiredValue.
// An activator that resolves to no parameter leaves the record
// inactive: the search fails closed rather than erroring.
func (r *Reader) IsActive(all []*element.Record, activator, requiredValue any) bool {
	return r.isActive(all, activator, requiredValue)
}

func (r *Reader) isActive(all []*element.Record, activator, requiredValue any) bool {
	active := false
	element.Walk(all, func(rec *element.Record) bool {
		name := rec.Properties.Get(r.keys.ParameterName, nil)
		if name == nil || !reflect.DeepEqual(name, activator) {
			return true
		}
		// First structural match is authoritative; stop either way.
		value := r.getter(rec.Type).Get(rec.Parameter)
		active = reflect.DeepEqual(value, requiredValue)
		return false
	})
	return active
}
