// Package admin performs post-build maintenance duties on live element
// trees: running event loops, editing content, toggling visibility,
// restyling and pushing current values back into configuration.
package admin

import (
	"io"
	"os"

	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/theme"
)

// Request carries the inputs a duty may need. Only the fields a given
// manager reads have to be populated.
type Request struct {
	// Records is the built element tree the duty operates on.
	Records []*element.Record
	// Target names the element a targeted duty applies to.
	Target string
	// Content is the text payload for content edits.
	Content string
	// Index is the insertion point for content edits, in either
	// single-line ("0", "end") or line.char ("1.0") form.
	Index string
	// Replace selects replace-all over insert for content edits.
	Replace bool
	// Aesthetics carries appearance settings for restyling duties.
	Aesthetics theme.Aesthetics
	// Keys is the property-key vocabulary of the tree.
	Keys element.Keys
	// Diagnostics receives duty diagnostic output.
	Diagnostics io.Writer
}

// Manager performs one maintenance duty.
type Manager interface {
	Manage(req *Request) error
}

// Admin dispatches duties to registered managers. An unknown duty goes
// to the "other" registration when present; with neither the duty is
// silently dropped.
type Admin struct {
	managers map[string]Manager
}

// New creates an empty administrator.
func New() *Admin {
	return &Admin{managers: map[string]Manager{}}
}

// Register associates a manager with a duty name, silently overwriting
// any previous registration.
func (a *Admin) Register(duty string, m Manager) {
	a.managers[duty] = m
}

// Administrate runs the manager registered for duty, falling back to
// the "other" registration for unknown duties.
func (a *Admin) Administrate(duty string, req *Request) error {
	m, ok := a.managers[duty]
	if !ok {
		if m, ok = a.managers["other"]; !ok {
			return nil
		}
	}
	if req.Diagnostics == nil {
		req.Diagnostics = os.Stdout
	}
	return m.Manage(req)
}
