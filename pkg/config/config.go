// Package config reads and writes element-tree configuration files:
// JSON documents carrying the records to build plus the key vocabulary
// they are written in.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/errors"
)

// Document is a decoded configuration file: the key vocabulary, the
// config-only element records and an optional format version.
type Document struct {
	FormatVersion string
	Keys          element.Keys
	Records       []*element.Record
}

// fileShape is the on-disk JSON layout.
type fileShape struct {
	FormatVersion string           `json:"format_version,omitempty"`
	BuilderKeys   json.RawMessage  `json:"builder_keys,omitempty"`
	Configuration []map[string]any `json:"configuration_data"`
}

// Decode parses a configuration document. The vocabulary under
// builder_keys overrides the defaults key by key; records are read
// with the resulting vocabulary. A present format_version must fall in
// the supported range.
func Decode(data []byte) (*Document, error) {
	const op = "config.Decode"

	var shape fileShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	}

	keys := element.DefaultKeys()
	if len(shape.BuilderKeys) > 0 {
		if err := json.Unmarshal(shape.BuilderKeys, &keys); err != nil {
			return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Err: fmt.Errorf("builder_keys: %w", err)}
		}
	}

	if err := CheckVersion(shape.FormatVersion); err != nil {
		return nil, err
	}

	records := make([]*element.Record, 0, len(shape.Configuration))
	for _, m := range shape.Configuration {
		rec, err := decodeRecord(m, keys)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return &Document{
		FormatVersion: shape.FormatVersion,
		Keys:          keys,
		Records:       records,
	}, nil
}

func decodeRecord(m map[string]any, keys element.Keys) (*element.Record, error) {
	const op = "config.Decode"

	typeTag, ok := m[keys.Type].(string)
	if !ok || typeTag == "" {
		return nil, &errors.Error{Op: op, Kind: errors.KindConfig,
			Err: fmt.Errorf("record missing %q", keys.Type)}
	}
	name, ok := m[keys.Name].(string)
	if !ok || name == "" {
		return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Element: typeTag,
			Err: fmt.Errorf("record missing %q", keys.Name)}
	}

	rec := element.New(typeTag, name)
	if props, ok := m[keys.Properties].(map[string]any); ok {
		for k, v := range props {
			rec.Properties[k] = v
		}
	}
	if children, ok := m[keys.Children].([]any); ok {
		for _, raw := range children {
			cm, ok := raw.(map[string]any)
			if !ok {
				return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Element: name,
					Err: fmt.Errorf("child of %q is not an object", name)}
			}
			child, err := decodeRecord(cm, keys)
			if err != nil {
				return nil, err
			}
			rec.Children = append(rec.Children, child)
		}
	}
	return rec, nil
}

// Encode renders a document back to its JSON layout. Widget and
// parameter state never serializes; record properties go out as they
// are.
func Encode(doc *Document) ([]byte, error) {
	const op = "config.Encode"

	keysJSON, err := json.Marshal(doc.Keys)
	if err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	}
	shape := fileShape{
		FormatVersion: doc.FormatVersion,
		BuilderKeys:   keysJSON,
		Configuration: make([]map[string]any, 0, len(doc.Records)),
	}
	for _, rec := range doc.Records {
		shape.Configuration = append(shape.Configuration, encodeRecord(rec, doc.Keys))
	}
	data, err := json.MarshalIndent(&shape, "", "  ")
	if err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	}
	return append(data, '\n'), nil
}

func encodeRecord(rec *element.Record, keys element.Keys) map[string]any {
	m := map[string]any{
		keys.Type: rec.Type,
		keys.Name: rec.Name,
	}
	if len(rec.Properties) > 0 {
		props := make(map[string]any, len(rec.Properties))
		for k, v := range rec.Properties {
			props[k] = v
		}
		m[keys.Properties] = props
	}
	if len(rec.Children) > 0 {
		children := make([]any, 0, len(rec.Children))
		for _, child := range rec.Children {
			children = append(children, encodeRecord(child, keys))
		}
		m[keys.Children] = children
	}
	return m
}

// Load reads and decodes the configuration file at path. Only .json
// files are supported.
func Load(path string) (*Document, error) {
	const op = "config.Load"

	if err := checkExtension(op, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	}
	return Decode(data)
}

// Save encodes the document and writes it to path. Only .json files
// are supported.
func Save(path string, doc *Document) error {
	const op = "config.Save"

	if err := checkExtension(op, path); err != nil {
		return err
	}
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	}
	return nil
}

func checkExtension(op, path string) error {
	if filepath.Ext(path) == ".json" {
		return nil
	}
	return &errors.Error{
		Op:   op,
		Kind: errors.KindUnsupportedFormat,
		Err:  fmt.Errorf("%q is not a .json file", path),
	}
}
