package binder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-facet/facet/pkg/builder"
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

func newTestWorkshop(out *bytes.Buffer) *Workshop {
	w := NewWorkshop(element.DefaultKeys())
	for eventType, b := range DefaultBinders() {
		w.Register(eventType, b)
	}
	if out != nil {
		w.SetDiagnostics(out)
	}
	return w
}

func eventRecord(name, eventType string, action any, widget any) *element.Record {
	rec := element.New("button", name)
	rec.Properties["event_type"] = eventType
	rec.Properties["action"] = action
	rec.Widget = widget
	return rec
}

func TestApplyBindsButtonCommand(t *testing.T) {
	button := native.NewButton(nil, "go", nil)
	rec := eventRecord("go_button", "button_press", "launch", button)

	fired := false
	actions := builder.ActionTable{"launch": func() { fired = true }}

	w := newTestWorkshop(&bytes.Buffer{})
	if err := w.Apply([]*element.Record{rec}, actions); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	button.Invoke()
	if !fired {
		t.Error("button press did not reach the bound action")
	}
}

func TestApplyRebindsWindowClose(t *testing.T) {
	window := native.NewWindow("t", native.Geometry{Width: 100, Height: 100})
	rec := eventRecord("main", "window_close", "shutdown", window)

	fired := false
	actions := builder.ActionTable{"shutdown": func() { fired = true }}

	w := newTestWorkshop(&bytes.Buffer{})
	if err := w.Apply([]*element.Record{rec}, actions); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	window.RequestClose()
	if !fired {
		t.Error("close request did not reach the bound action")
	}
	if !window.Visible() {
		t.Error("a bound close action must take over destruction")
	}
}

func TestApplyUnboundEventTypeFails(t *testing.T) {
	rec := eventRecord("odd", "double_click", "noop", nil)
	w := newTestWorkshop(&bytes.Buffer{})
	err := w.Apply([]*element.Record{rec}, builder.ActionTable{})
	if !errors.IsKind(err, errors.KindUnboundEventType) {
		t.Fatalf("want KindUnboundEventType, got %v", err)
	}
	if !strings.Contains(err.Error(), "odd") {
		t.Errorf("error should name the element: %v", err)
	}
}

func TestApplyNoneTypeIsDiagnosticOnly(t *testing.T) {
	rec := eventRecord("plain_label", "NoneType", nil, nil)
	var out bytes.Buffer
	w := newTestWorkshop(&out)
	if err := w.Apply([]*element.Record{rec}, builder.ActionTable{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !strings.Contains(out.String(), "plain_label") {
		t.Errorf("generic binder should report the skipped element, got %q", out.String())
	}
}

func TestCommandBinderRejectsNonButton(t *testing.T) {
	rec := eventRecord("imposter", "button_press", "noop", native.NewVar("x"))
	w := newTestWorkshop(&bytes.Buffer{})
	err := w.Apply([]*element.Record{rec}, builder.ActionTable{})
	if !errors.IsKind(err, errors.KindInvalidParentType) {
		t.Fatalf("want KindInvalidParentType, got %v", err)
	}
}

func TestApplyMissingEventTypeDefaultsToNoneType(t *testing.T) {
	rec := element.New("text_line", "bare")
	var out bytes.Buffer
	w := newTestWorkshop(&out)
	if err := w.Apply([]*element.Record{rec}, builder.ActionTable{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
}
