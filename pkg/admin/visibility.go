package admin

import (
	"fmt"

	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/errors"
)

// gridded is the slice of the native widget surface visibility
// toggling needs.
type gridded interface {
	GridRemove()
	GridRestore()
}

// HideShowManager toggles a named element between hidden and shown,
// keeping its visible property in step and forcing a redraw on every
// top-level window so the change lands immediately.
type HideShowManager struct{}

func (HideShowManager) Manage(req *Request) error {
	rec := element.FindByName(req.Records, req.Target)
	if rec == nil {
		return &errors.Error{
			Op:      "admin.HideShow",
			Kind:    errors.KindConfig,
			Element: req.Target,
			Err:     fmt.Errorf("no element with that name"),
		}
	}
	widget, ok := rec.Widget.(gridded)
	if !ok {
		return &errors.Error{
			Op:      "admin.HideShow",
			Kind:    errors.KindConfig,
			Element: req.Target,
			Err:     fmt.Errorf("element holds %T, which cannot be hidden", rec.Widget),
		}
	}
	if element.Truthy(rec.Properties.Get(req.Keys.Visible, true)) {
		widget.GridRemove()
		rec.Properties[req.Keys.Visible] = false
	} else {
		widget.GridRestore()
		rec.Properties[req.Keys.Visible] = true
	}
	for _, window := range topLevelWindows(req) {
		window.UpdateIdleTasks()
	}
	return nil
}
