// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ConfigFile   string `yaml:"config_file"`
	RecordsDir   string `yaml:"records_dir"`
	TemplateName string `yaml:"template_name"`
	GitHubRepo   string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "decisions",
			DisplayName:  "Decisions",
			Description:  "Scaffold and number decision records",
			EnvPrefix:    "DECISIONS",
			ConfigFile:   ".decisions.yaml",
			RecordsDir:   "docs/decisions",
			TemplateName: "decision-template.md",
			GitHubRepo:   "sfkleach/decisions",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "decisions").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "DECISIONS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the project config file name (e.g., ".decisions.yaml").
func ConfigFile() string { load(); return defaults.ConfigFile }

// RecordsDir returns the default records directory, relative to the project root.
func RecordsDir() string { load(); return defaults.RecordsDir }

// TemplateName returns the file name of the template inside the records directory.
func TemplateName() string { load(); return defaults.TemplateName }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("dir") → "DECISIONS_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
