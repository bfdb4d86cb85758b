package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-facet/facet/pkg/errors"
)

const sampleDocument = `{
  "format_version": "1.2.0",
  "configuration_data": [
    {
      "type": "window",
      "name": "main",
      "properties": {"visible_text": "Demo", "size_and_position": "800x600+10+10"},
      "children": [
        {
          "type": "entry",
          "name": "speed",
          "properties": {"default_value": "10", "parameter_name": "speed"}
        },
        {"type": "text_line", "name": "hint"}
      ]
    }
  ]
}`

func TestDecodeSampleDocument(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.FormatVersion != "1.2.0" {
		t.Errorf("format version = %q", doc.FormatVersion)
	}
	if len(doc.Records) != 1 {
		t.Fatalf("got %d top-level records", len(doc.Records))
	}
	window := doc.Records[0]
	if window.Type != "window" || window.Name != "main" {
		t.Errorf("window record = %s/%s", window.Type, window.Name)
	}
	if got := window.Properties.String("visible_text", ""); got != "Demo" {
		t.Errorf("visible_text = %q", got)
	}
	if len(window.Children) != 2 {
		t.Fatalf("window has %d children", len(window.Children))
	}
	if got := window.Children[0].Properties.String("default_value", ""); got != "10" {
		t.Errorf("entry default = %q", got)
	}
	if window.Widget != nil || window.Parameter != nil {
		t.Error("decoded records must carry no live state")
	}
}

func TestDecodeHonorsCustomKeys(t *testing.T) {
	data := `{
	  "builder_keys": {"type_key": "kind", "name_key": "id", "children_key": "parts"},
	  "configuration_data": [
	    {"kind": "frame", "id": "box", "parts": [{"kind": "text_line", "id": "inner"}]}
	  ]
	}`
	doc, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Keys.Type != "kind" || doc.Keys.Name != "id" {
		t.Errorf("keys not overridden: %+v", doc.Keys)
	}
	if doc.Keys.Properties != "properties" {
		t.Error("unmentioned keys must keep their defaults")
	}
	if len(doc.Records) != 1 || len(doc.Records[0].Children) != 1 {
		t.Fatalf("tree shape wrong: %+v", doc.Records)
	}
	if doc.Records[0].Children[0].Name != "inner" {
		t.Errorf("child = %+v", doc.Records[0].Children[0])
	}
}

func TestDecodeRejectsAnonymousRecord(t *testing.T) {
	_, err := Decode([]byte(`{"configuration_data": [{"type": "window"}]}`))
	if !errors.IsKind(err, errors.KindConfig) {
		t.Fatalf("want KindConfig, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode round trip: %v", err)
	}
	if diff := cmp.Diff(doc.Records, again.Records); diff != "" {
		t.Errorf("records changed across round trip (-first +second):\n%s", diff)
	}
	if doc.Keys != again.Keys {
		t.Errorf("keys changed across round trip")
	}
}

func TestLoadRejectsNonJSONPath(t *testing.T) {
	_, err := Load("layout.yaml")
	if !errors.IsKind(err, errors.KindUnsupportedFormat) {
		t.Fatalf("want KindUnsupportedFormat, got %v", err)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(doc.Records, loaded.Records); diff != "" {
		t.Errorf("records changed across save/load (-saved +loaded):\n%s", diff)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(raw), `"widget"`) {
		t.Error("live widget state must not serialize")
	}
}

func TestValidateAcceptsSample(t *testing.T) {
	result, err := Validate([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("sample should validate, issues: %v", result.Issues)
	}
}

func TestValidateReportsIssuesWithPaths(t *testing.T) {
	bad := `{"configuration_data": [17], "stray": true}`
	result, err := Validate([]byte(bad))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("document should not validate")
	}
	var sawItemPath bool
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Path, "/configuration_data/0") {
			sawItemPath = true
		}
	}
	if !sawItemPath {
		t.Errorf("issues should point at the bad item, got %v", result.Issues)
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"", true},
		{"1.0.0", true},
		{"1.9.3", true},
		{"2.0.0", false},
		{"0.4.0", false},
		{"not-a-version", false},
	}
	for _, tt := range tests {
		err := CheckVersion(tt.version)
		if tt.ok && err != nil {
			t.Errorf("CheckVersion(%q) = %v, want nil", tt.version, err)
		}
		if !tt.ok && !errors.IsKind(err, errors.KindUnsupportedFormat) {
			t.Errorf("CheckVersion(%q) = %v, want KindUnsupportedFormat", tt.version, err)
		}
	}
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	_, err := Decode([]byte(`{"format_version": "3.0.0", "configuration_data": []}`))
	if !errors.IsKind(err, errors.KindUnsupportedFormat) {
		t.Fatalf("want KindUnsupportedFormat, got %v", err)
	}
}
