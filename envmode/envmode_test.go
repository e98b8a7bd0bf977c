package envmode

import "testing"

func TestParseEnv(t *testing.T) {
	tests := []struct {
		in   string
		want ENV_MODE
	}{
		{"debug", DebugMode},
		{"dev", DebugMode},
		{"development", DebugMode},
		{"", DebugMode},
		{"release", ReleaseMode},
		{"prod", ReleaseMode},
		{"PRODUCTION", ReleaseMode},
		{"test", TestMode},
		{"testing", TestMode},
		{"nonsense", DebugMode},
	}

	for _, tt := range tests {
		if got := ParseEnv(tt.in); got != tt.want {
			t.Errorf("ParseEnv(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigFileName(t *testing.T) {
	SetMode(DebugMode)
	if got := ConfigFileName(); got != "logging-debug.properties" {
		t.Errorf("ConfigFileName() = %q in debug mode", got)
	}

	SetMode(ReleaseMode)
	if got := ConfigFileName(); got != "logging.properties" {
		t.Errorf("ConfigFileName() = %q in release mode", got)
	}

	SetMode(DebugMode)
}
