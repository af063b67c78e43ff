package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfkleach/decisions/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// Setting keys.
const (
	KeyRecordsDir     = "records_dir"
	KeyRequireVersion = "require_version"
)

const fileType = "yaml"

// projectDir is the directory passed to the last Load call.
var projectDir = "."

// FilePath returns the config file path for a project root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load initializes Viper to read the project config file and environment.
// A missing file is not an error; a file that fails schema validation is.
func Load(root string) error {
	viper.Reset()
	projectDir = root

	configFile := FilePath(root)
	viper.SetConfigFile(configFile)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyRecordsDir, branding.RecordsDir())

	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	result, err := ValidateFile(configFile)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid config %s: %s", configFile, result.Summary())
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", configFile, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// RecordsDir returns the records directory resolved against the project root.
func RecordsDir() string {
	dir := Get(KeyRecordsDir)
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectDir, dir)
}

// Set writes a key-value pair to the project config file. The updated file
// must still pass schema validation, otherwise nothing is written.
func Set(key, value string) error {
	configFile := FilePath(projectDir)

	settings := map[string]interface{}{}
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("parsing config %s: %w", configFile, err)
		}
		if settings == nil {
			settings = map[string]interface{}{}
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("reading config %s: %w", configFile, err)
	}

	settings[key] = value

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	result, err := Validate(out)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid value for %q: %s", key, result.Summary())
	}

	if err := os.WriteFile(configFile, out, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", configFile, err)
	}

	viper.Set(key, value)
	return nil
}

// Keys returns the settings understood by the config file.
func Keys() []string {
	return []string{KeyRecordsDir, KeyRequireVersion}
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
