// Package element defines the tree node format shared by the Facet
// factory, reader, binder and admin subsystems.
package element

import "strconv"

// Record describes one widget: its type tag, lookup name, configuration
// properties, children and, once built, its live native handle and
// parameter cell.
//
// Widget and Parameter exist only on built trees. They are never
// serialized; a config file carries the config-only projection (Type,
// Name, Properties, Children).
type Record struct {
	// Type selects which builder, getter and binder handle this element.
	Type string
	// Name uniquely identifies the element across the whole tree. It is
	// used for lookup, not display; the first match is authoritative.
	Name string
	// Properties holds the configuration keys and values.
	Properties Properties
	// Children holds nested records, in order. Never nil on a
	// well-formed record, even for leaf types.
	Children []*Record
	// Widget is the opaque handle to the instantiated native object,
	// exclusively owned by this record.
	Widget any
	// Parameter is the mutable value cell (or literal) a getter reads.
	// Nil for non-data-bearing element types.
	Parameter any
}

// New returns a record with non-nil Properties and Children.
func New(typeTag, name string) *Record {
	return &Record{
		Type:       typeTag,
		Name:       name,
		Properties: Properties{},
		Children:   []*Record{},
	}
}

// Properties is the ordered-by-tree-position mapping of configuration
// keys to values for one record.
type Properties map[string]any

// Get returns the value for key, or def when the key is absent.
func (p Properties) Get(key string, def any) any {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// String returns the value for key as a string, or def when the key is
// absent or nil. Non-string scalars are formatted.
func (p Properties) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	default:
		return def
	}
}

// Int returns the value for key as an int, or def when the key is
// absent or not numeric. JSON numbers arrive as float64; numeric
// strings are accepted because configuration is JSON text.
func (p Properties) Int(key string, def int) int {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return def
}

// Clone returns a deep copy of the properties. Nested slices are copied
// one level deep, which covers the JSON shapes configuration uses.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		if s, ok := v.([]any); ok {
			copied := make([]any, len(s))
			copy(copied, s)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}

// Truthy reports whether v counts as true under the relaxed-typing
// policy for JSON text configuration: boolean true, "True" or "Yes"
// (exact case). Every other value is false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "True" || t == "Yes"
	default:
		return false
	}
}
