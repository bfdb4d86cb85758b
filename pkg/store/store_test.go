package store

import (
	goerrors "errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "facet.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGetDelParam(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetParam("speed", "120"); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	got, err := s.Param("speed")
	if err != nil {
		t.Fatalf("Param: %v", err)
	}
	if got != "120" {
		t.Errorf("Param = %v", got)
	}

	if err := s.DelParam("speed"); err != nil {
		t.Fatalf("DelParam: %v", err)
	}
	if _, err := s.Param("speed"); !goerrors.Is(err, ErrNoParam) {
		t.Errorf("Param after delete = %v, want ErrNoParam", err)
	}

	// Deleting again stays quiet.
	if err := s.DelParam("speed"); err != nil {
		t.Errorf("repeat DelParam: %v", err)
	}
}

func TestParamMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Param("never_set"); !goerrors.Is(err, ErrNoParam) {
		t.Errorf("Param = %v, want ErrNoParam", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetParam("leftover", "x"); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	want := map[string]any{"speed": "120", "season": "spring"}
	if err := s.SaveSnapshot(want); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot (-want +got):\n%s", diff)
	}
	if _, ok := got["leftover"]; ok {
		t.Error("SaveSnapshot must replace previous state")
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetParam("speed", "120"); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Param("speed")
	if err != nil {
		t.Fatalf("Param: %v", err)
	}
	if got != "120" {
		t.Errorf("Param after reopen = %v", got)
	}
}

func TestAllParams(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetParam("a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetParam("b", "2"); err != nil {
		t.Fatal(err)
	}
	got, err := s.AllParams()
	if err != nil {
		t.Fatalf("AllParams: %v", err)
	}
	want := map[string]any{"a": "1", "b": "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllParams (-want +got):\n%s", diff)
	}
}
