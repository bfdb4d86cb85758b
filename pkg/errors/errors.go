// Package errors provides structured error handling for the Facet toolkit.
package errors

import (
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnknownElementType indicates the factory has no builder for an
	// element's type tag.
	KindUnknownElementType
	// KindUnboundEventType indicates the workshop has no binder for an
	// element's event type.
	KindUnboundEventType
	// KindUnknownPopupType indicates a popup registry miss.
	KindUnknownPopupType
	// KindInvalidParentType indicates a builder received a parent handle
	// of the wrong native kind.
	KindInvalidParentType
	// KindUnsupportedFormat indicates a config file extension mismatch.
	KindUnsupportedFormat
	// KindMissingWidgetForEdit indicates a content edit targeted an
	// element whose widget is not an editable text kind.
	KindMissingWidgetForEdit
	// KindConfig indicates a configuration load, parse or validation error.
	KindConfig
	// KindStore indicates a defaults-store error.
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownElementType:
		return "unknown element type"
	case KindUnboundEventType:
		return "unbound event type"
	case KindUnknownPopupType:
		return "unknown popup type"
	case KindInvalidParentType:
		return "invalid parent type"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindMissingWidgetForEdit:
		return "missing widget for edit"
	case KindConfig:
		return "config"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Facet toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "factory.Create").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Element is the name of the element involved, if any.
	Element string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error from an operation, kind and underlying error.
func E(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Errorf constructs an Error with a formatted underlying message.
func Errorf(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) ErrorKind {
	for err != nil {
		if fe, ok := err.(*Error); ok {
			return fe.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}

// IsKind reports whether err (or an error it wraps) carries kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
