// Package project resolves the optional facet.yaml project file and
// the Go module it lives in.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional facet.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Layout LayoutConfig `yaml:"layout"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// LayoutConfig points at the interface description.
type LayoutConfig struct {
	Path          string `yaml:"path,omitempty"`
	FormatVersion string `yaml:"format_version,omitempty"`
}

// Resolved contains resolved project values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	LayoutPath    string
	FormatVersion string
}

// LoadOptional reads facet.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "facet.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read facet.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse facet.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads facet.yaml (if present) and fills in defaults from the
// enclosing Go module.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := readModulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	layoutPath := strings.TrimSpace(cfg.Layout.Path)
	if layoutPath == "" {
		layoutPath = "layout.json"
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		LayoutPath:    layoutPath,
		FormatVersion: strings.TrimSpace(cfg.Layout.FormatVersion),
	}, nil
}

// FindRoot walks up from the current directory to find go.mod.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "facet_app"
	}
	return base
}
