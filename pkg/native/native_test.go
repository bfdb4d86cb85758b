package native

import (
	"testing"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		in      string
		want    Geometry
		wantErr bool
	}{
		{"1040x640+0+0", Geometry{1040, 640, 0, 0}, false},
		{"800x600+20+40", Geometry{800, 600, 20, 40}, false},
		{"800x600", Geometry{}, true},
		{"x600+0+0", Geometry{}, true},
		{"", Geometry{}, true},
	}
	for _, tt := range tests {
		got, err := ParseGeometry(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGeometry(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGeometry(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestGeometryRoundTrip(t *testing.T) {
	const s = "1040x640+10+20"
	g, err := ParseGeometry(s)
	if err != nil {
		t.Fatal(err)
	}
	if g.String() != s {
		t.Errorf("round trip = %q, want %q", g.String(), s)
	}
}

func TestGridPlacementAndVisibility(t *testing.T) {
	w := NewWindow("t", Geometry{100, 100, 0, 0})
	f := NewFrame(w, "box", 500, 20)

	f.Place(2, 3)
	if !f.Visible() || f.Row() != 2 || f.Col() != 3 {
		t.Errorf("after Place: visible=%v row=%d col=%d", f.Visible(), f.Row(), f.Col())
	}

	f.GridRemove()
	if f.Visible() {
		t.Error("removed frame should not be visible")
	}

	f.GridRestore()
	if !f.Visible() || f.Row() != 2 || f.Col() != 3 {
		t.Error("restore should return the frame to its remembered cell")
	}
}

func TestWindowDestroyCascades(t *testing.T) {
	w := NewWindow("t", Geometry{100, 100, 0, 0})
	f := NewFrame(w, "", 0, 0)
	e := NewEntry(f, NewVar("x"), 15, "arial 14")

	w.Destroy()
	if !f.Destroyed() || !e.Destroyed() {
		t.Error("destroying the window must release all descendants")
	}
	// Idempotent.
	w.Destroy()
}

func TestWindowMainLoopUnblocks(t *testing.T) {
	w := NewWindow("t", Geometry{100, 100, 0, 0})
	go w.Destroy()
	w.MainLoop() // must return
}

func TestWindowCloseProtocol(t *testing.T) {
	w := NewWindow("t", Geometry{100, 100, 0, 0})
	called := false
	w.SetCloseAction(func() { called = true })
	w.RequestClose()
	if !called {
		t.Error("close protocol action not invoked")
	}
	if w.Destroyed() {
		t.Error("close action alone must not destroy the window")
	}

	plain := NewWindow("t2", Geometry{100, 100, 0, 0})
	plain.RequestClose()
	if !plain.Destroyed() {
		t.Error("without a close action, RequestClose destroys the window")
	}
}

func TestEntryEditing(t *testing.T) {
	v := NewVar("0")
	e := NewEntry(nil, v, 15, "arial 14")

	e.Insert(1, "42")
	if e.Text() != "042" {
		t.Errorf("Insert mid = %q", e.Text())
	}
	e.Insert(100, "!")
	if e.Text() != "042!" {
		t.Errorf("Insert clamps past end = %q", e.Text())
	}
	e.DeleteAll()
	if e.Text() != "" {
		t.Errorf("DeleteAll = %q", e.Text())
	}
}

func TestTextBoxIndexing(t *testing.T) {
	tb := NewTextBox(nil, "first\nsecond", 40, 5)

	tests := []struct {
		index string
		want  int
	}{
		{"1.0", 0},
		{"1.3", 3},
		{"2.0", 6},
		{"2.3", 9},
		{"end", 12},
		{"9.0", 12},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := tb.resolveIndex(tt.index); got != tt.want {
			t.Errorf("resolveIndex(%q) = %d, want %d", tt.index, got, tt.want)
		}
	}

	tb.Insert("2.0", ">> ")
	if tb.Text() != "first\n>> second" {
		t.Errorf("Insert at line 2 = %q", tb.Text())
	}
	tb.Delete("1.0", "end")
	if tb.Text() != "" {
		t.Errorf("Delete all = %q", tb.Text())
	}
}

func TestComboSelect(t *testing.T) {
	v := NewVar("")
	c := NewCombo(nil, v, []string{"a", "b"}, 40, "arial 14")
	fired := 0
	c.SetOnSelect(func() { fired++ })

	c.Select(1)
	if v.Get() != "b" || fired != 1 {
		t.Errorf("Select(1): value=%q fired=%d", v.Get(), fired)
	}
	c.Select(5)
	if v.Get() != "b" || fired != 1 {
		t.Error("out-of-range Select must be a no-op")
	}
}

func TestButtonInvoke(t *testing.T) {
	clicks := 0
	b := NewButton(nil, "Go", func() { clicks++ })
	b.Invoke()
	b.SetCommand(nil)
	b.Invoke()
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestScriptedDialogs(t *testing.T) {
	yes := true
	s := &ScriptedDialogs{
		Answers:  []bool{true, false},
		TriState: []*bool{&yes},
		Paths:    []string{"/tmp/a.json"},
	}

	if !s.YesNo("q1", "m") {
		t.Error("first scripted answer should be true")
	}
	if s.OkCancel("q2", "m") {
		t.Error("second scripted answer should be false")
	}
	if s.YesNo("q3", "m") {
		t.Error("exhausted queue should return the cancelled sentinel")
	}
	if got := s.YesNoCancel("q4", "m"); got == nil || !*got {
		t.Error("tri-state answer lost")
	}
	if got := s.YesNoCancel("q5", "m"); got != nil {
		t.Error("exhausted tri-state should return nil")
	}
	if got := s.FileOpen("q6", ".", nil); got != "/tmp/a.json" {
		t.Errorf("FileOpen = %q", got)
	}
	if got := s.FileSaveAs("q7", ".", nil); got != "" {
		t.Errorf("exhausted FileSaveAs = %q, want empty", got)
	}
	if len(s.Asked) != 7 {
		t.Errorf("asked %d dialogs, want 7", len(s.Asked))
	}
}
