package admin

import "github.com/go-facet/facet/pkg/native"

// styledClasses are the widget classes restyling touches.
var styledClasses = []string{"TLabel", "TButton", "TCombobox", "TNotebook.Tab"}

// StyleManager pushes the request's aesthetics into the shared native
// style table, so widgets created afterwards pick up the new look.
type StyleManager struct{}

func (StyleManager) Manage(req *Request) error {
	for _, class := range styledClasses {
		native.StyleConfigure(class, req.Aesthetics.Font)
	}
	return nil
}
