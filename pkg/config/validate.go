package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-facet/facet/pkg/errors"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// supportedVersions is the format_version range this release reads.
var supportedVersions = mustConstraint(">= 1.0.0, < 2.0.0")

func mustConstraint(r string) *semver.Constraints {
	c, err := semver.NewConstraint(r)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidationIssue is a single schema violation inside a document.
type ValidationIssue struct {
	// Path is the instance location, e.g. "/configuration_data/0".
	Path string
	// Message is the human-readable violation text.
	Message string
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw document bytes against the configuration schema.
// The error return covers malformed input and schema compilation
// failures; schema violations come back in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, &errors.Error{Op: "config.Validate", Kind: errors.KindConfig, Err: err}
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.Error{Op: "config.Validate", Kind: errors.KindConfig, Err: err}
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, &errors.Error{Op: "config.Validate", Kind: errors.KindConfig, Err: err}
	}
	return &ValidationResult{Issues: collectIssues(ve, nil)}, nil
}

// collectIssues walks the validation error tree and keeps the leaf
// violations, which carry the specific instance paths.
func collectIssues(ve *jsonschema.ValidationError, issues []ValidationIssue) []ValidationIssue {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return append(issues, ValidationIssue{Path: path, Message: msg})
	}
	for _, cause := range ve.Causes {
		issues = collectIssues(cause, issues)
	}
	return issues
}

// CheckVersion verifies a document format version against the
// supported range. An absent version is accepted.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return &errors.Error{
			Op:   "config.CheckVersion",
			Kind: errors.KindUnsupportedFormat,
			Err:  fmt.Errorf("format_version %q: %w", version, err),
		}
	}
	if !supportedVersions.Check(v) {
		return &errors.Error{
			Op:   "config.CheckVersion",
			Kind: errors.KindUnsupportedFormat,
			Err:  fmt.Errorf("format_version %s outside supported range %s", version, supportedVersions),
		}
	}
	return nil
}
