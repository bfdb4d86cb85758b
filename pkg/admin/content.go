package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

// ContentEditManager inserts into or replaces the contents of the
// editable widget behind a named element. Elements whose widget is a
// framing container are unwrapped to the first editable child, so the
// same duty works for bare and frame-wrapped fields.
type ContentEditManager struct{}

func (ContentEditManager) Manage(req *Request) error {
	rec := element.FindByName(req.Records, req.Target)
	if rec == nil {
		return &errors.Error{
			Op:      "admin.ContentEdit",
			Kind:    errors.KindMissingWidgetForEdit,
			Element: req.Target,
			Err:     fmt.Errorf("no element with that name"),
		}
	}
	switch widget := editable(rec.Widget).(type) {
	case *native.Entry:
		if req.Replace {
			widget.DeleteAll()
			widget.Insert(0, req.Content)
			return nil
		}
		widget.Insert(entryIndex(req.Index, widget.Text()), req.Content)
		return nil
	case *native.TextBox:
		if req.Replace {
			widget.Delete("1.0", "end")
			widget.Insert("1.0", req.Content)
			return nil
		}
		widget.Insert(textIndex(req.Index), req.Content)
		return nil
	default:
		return &errors.Error{
			Op:      "admin.ContentEdit",
			Kind:    errors.KindMissingWidgetForEdit,
			Element: req.Target,
			Err:     fmt.Errorf("element holds %T, which has no editable content", rec.Widget),
		}
	}
}

// editable unwraps a framing container to its first editable child.
func editable(widget any) any {
	frame, ok := widget.(*native.Frame)
	if !ok {
		return widget
	}
	for _, child := range frame.Children() {
		switch child.(type) {
		case *native.Entry, *native.TextBox:
			return child
		}
	}
	return widget
}

// entryIndex adapts an insertion point to single-line character
// indexing. Multi-line "line.char" positions keep only the character
// part and "end" means after the current contents.
func entryIndex(index, text string) int {
	if index == "end" {
		return len(text)
	}
	if _, char, ok := strings.Cut(index, "."); ok {
		index = char
	}
	n, err := strconv.Atoi(index)
	if err != nil {
		return 0
	}
	return n
}

// textIndex adapts an insertion point to multi-line indexing. A bare
// character index lands on the first line.
func textIndex(index string) string {
	if index == "end" || strings.Contains(index, ".") {
		return index
	}
	if _, err := strconv.Atoi(index); err == nil {
		return "1." + index
	}
	return "1.0"
}
