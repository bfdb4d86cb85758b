package admin

import (
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/native"
)

// SetEntryDefaultsManager copies every entry's current value into its
// default_value property, so the tree's configuration snapshot opens
// with the values the user left behind.
type SetEntryDefaultsManager struct{}

func (SetEntryDefaultsManager) Manage(req *Request) error {
	element.Walk(req.Records, func(rec *element.Record) bool {
		if rec.Type != "entry" {
			return true
		}
		if v, ok := rec.Parameter.(*native.Var); ok {
			rec.Properties[req.Keys.DefaultValue] = v.Get()
		}
		return true
	})
	return nil
}

// SetDropDownDefaultsManager copies every drop-down's current
// selection into its default_option property.
type SetDropDownDefaultsManager struct{}

func (SetDropDownDefaultsManager) Manage(req *Request) error {
	element.Walk(req.Records, func(rec *element.Record) bool {
		if rec.Type != "drop_down" {
			return true
		}
		if v, ok := rec.Parameter.(*native.Var); ok {
			rec.Properties[req.Keys.DefaultOption] = v.Get()
		}
		return true
	})
	return nil
}

// SetTextBoxDefaultsManager copies every text box's current contents
// into its default_text property.
type SetTextBoxDefaultsManager struct{}

func (SetTextBoxDefaultsManager) Manage(req *Request) error {
	element.Walk(req.Records, func(rec *element.Record) bool {
		if rec.Type != "text_box" {
			return true
		}
		if box, ok := rec.Parameter.(*native.TextBox); ok {
			rec.Properties[req.Keys.DefaultText] = box.Text()
		}
		return true
	})
	return nil
}

// DefaultManagers returns the standard registry contents keyed by duty
// name, including the "other" fallback.
func DefaultManagers() map[string]Manager {
	return map[string]Manager{
		"other":                  DummyManager{},
		"start_event_loop":       EventLoopManager{},
		"quit_close":             QuitCloseManager{},
		"style":                  StyleManager{},
		"content_edit":           ContentEditManager{},
		"hide_show":              HideShowManager{},
		"set_entry_defaults":     SetEntryDefaultsManager{},
		"set_drop_down_defaults": SetDropDownDefaultsManager{},
		"set_text_box_defaults":  SetTextBoxDefaultsManager{},
	}
}
