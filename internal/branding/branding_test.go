package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "scaffolder"},
		{"HomeDir", HomeDir(), ".scaffolder"},
		{"EnvPrefix", EnvPrefix(), "SCAFFOLDER"},
		{"GoModule", GoModule(), "github.com/salesdash/scaffolder"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("verbose"); got != "SCAFFOLDER_VERBOSE" {
		t.Errorf("EnvVar(verbose) = %q, want %q", got, "SCAFFOLDER_VERBOSE")
	}
}
