package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "decisions"},
		{"env prefix", EnvPrefix(), "DECISIONS"},
		{"config file", ConfigFile(), ".decisions.yaml"},
		{"records dir", RecordsDir(), "docs/decisions"},
		{"template name", TemplateName(), "decision-template.md"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("records_dir"); got != "DECISIONS_RECORDS_DIR" {
		t.Errorf("EnvVar() = %q, want %q", got, "DECISIONS_RECORDS_DIR")
	}
}
