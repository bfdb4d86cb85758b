// Package userconfig reads and writes the per-user CLI settings file
// (~/.facet/config.yaml) and the FACET_* environment overrides.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	homeDir   = ".facet"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "FACET"
)

// Dir returns the per-user settings directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the full path of the settings file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", Dir(), err)
	}
	return nil
}

// Load points viper at the settings file and the environment. A
// missing file is fine; environment overrides still apply.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns one settings value, or "" when unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set stores one settings value and saves the file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, value)

	path := FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", path, err)
		}
		f.Close()
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
