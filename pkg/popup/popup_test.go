package popup

import (
	"testing"

	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/native"
)

func newTestRegistry(script *native.ScriptedDialogs) *Registry {
	native.SetDialogs(script)
	r := NewRegistry()
	for popupType, p := range DefaultPopups() {
		r.Register(popupType, p)
	}
	return r
}

func TestYesNoAnswers(t *testing.T) {
	script := &native.ScriptedDialogs{Answers: []bool{true, false}}
	r := newTestRegistry(script)
	defer native.SetDialogs(nil)

	got, err := r.Dialog("yes_no", Params{Title: "Confirm", Message: "Proceed?"})
	if err != nil {
		t.Fatalf("Dialog: %v", err)
	}
	if got != true {
		t.Errorf("first answer = %v, want true", got)
	}
	got, _ = r.Dialog("yes_no", Params{Title: "Confirm"})
	if got != false {
		t.Errorf("second answer = %v, want false", got)
	}
	if len(script.Asked) != 2 || script.Asked[0] != "Confirm" {
		t.Errorf("asked = %v", script.Asked)
	}
}

func TestYesNoCancelTriState(t *testing.T) {
	yes := true
	script := &native.ScriptedDialogs{TriState: []*bool{&yes, nil}}
	r := newTestRegistry(script)
	defer native.SetDialogs(nil)

	got, err := r.Dialog("yes_no_cancel", Params{Title: "Save?"})
	if err != nil {
		t.Fatalf("Dialog: %v", err)
	}
	if answer, ok := got.(*bool); !ok || answer == nil || !*answer {
		t.Errorf("first answer = %v, want yes", got)
	}
	got, _ = r.Dialog("yes_no_cancel", Params{Title: "Save?"})
	if answer, ok := got.(*bool); !ok || answer != nil {
		t.Errorf("exhausted queue should read as cancelled, got %v", got)
	}
}

func TestFileDialogsReturnPaths(t *testing.T) {
	script := &native.ScriptedDialogs{Paths: []string{"/tmp/in.json"}}
	r := newTestRegistry(script)
	defer native.SetDialogs(nil)

	got, err := r.Dialog("file_open", Params{
		Title: "Open configuration",
		Types: []native.FileType{{Label: "JSON", Patterns: []string{"*.json"}}},
	})
	if err != nil {
		t.Fatalf("Dialog: %v", err)
	}
	if got != "/tmp/in.json" {
		t.Errorf("path = %v", got)
	}

	// Queue is drained: save-as now reads as cancelled.
	got, err = r.Dialog("file_save_as", Params{Title: "Save configuration"})
	if err != nil {
		t.Fatalf("Dialog: %v", err)
	}
	if got != "" {
		t.Errorf("cancelled save = %v, want empty path", got)
	}
}

func TestUnknownPopupTypeFails(t *testing.T) {
	r := newTestRegistry(&native.ScriptedDialogs{})
	defer native.SetDialogs(nil)

	_, err := r.Dialog("color_picker", Params{})
	if !errors.IsKind(err, errors.KindUnknownPopupType) {
		t.Fatalf("want KindUnknownPopupType, got %v", err)
	}
}
