package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so the host environment does not
// leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvGroqAPIKey, EnvGoogleAPIKey, EnvGoogleEngineID, EnvModel, EnvTimeout,
		EnvContinueOnAmbiguous, EnvLogLevel, EnvLogFormat, EnvWikipediaLanguage,
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if cfg.Model != want.Model || cfg.StrategyTimeout != want.StrategyTimeout || cfg.Wikipedia.Sentences != 2 {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Groq.APIKey != "" || cfg.Google.APIKey != "" {
		t.Error("API keys should be empty without environment")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "askgo.yaml", `
model: llama-3.3-70b-versatile
strategy_timeout: 5s
continue_on_ambiguous: true
google:
  engine_id: engine-1
wikipedia:
  language: it
  sentences: 3
log:
  level: debug
  format: json
`)

	cfg, err := Load(path, filepath.Join(t.TempDir(), "none.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "llama-3.3-70b-versatile" || cfg.StrategyTimeout != 5*time.Second || !cfg.ContinueOnAmbiguous {
		t.Errorf("unexpected cfg: %+v", cfg)
	}
	if cfg.Google.EngineID != "engine-1" || cfg.Wikipedia.Language != "it" || cfg.Wikipedia.Sentences != 3 {
		t.Errorf("unexpected nested cfg: %+v", cfg)
	}
	if cfg.Groq.BaseURL != Default().Groq.BaseURL {
		t.Errorf("unset YAML keys should keep defaults, got %q", cfg.Groq.BaseURL)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

// TestLoad_Precedence verifies that environment variables beat env files,
// which beat the YAML file.
func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "askgo.yaml", "model: from-yaml\ngroq:\n  api_key: yaml-key\n")
	envFile := writeFile(t, "test.env", "GROQ_API_KEY=file-key\nASKGO_MODEL=from-file\nGOOGLE_API_KEY=google-file\n")
	t.Setenv(EnvModel, "from-env")

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "from-env" {
		t.Errorf("Model = %q, want from-env", cfg.Model)
	}
	if cfg.Groq.APIKey != "file-key" {
		t.Errorf("Groq.APIKey = %q, want file-key", cfg.Groq.APIKey)
	}
	if cfg.Google.APIKey != "google-file" {
		t.Errorf("Google.APIKey = %q, want google-file", cfg.Google.APIKey)
	}
	// godotenv sets process variables; reset them for other tests.
	os.Unsetenv(EnvGroqAPIKey)
	os.Unsetenv(EnvGoogleAPIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{"bad yaml", "model: [", nil, "failed to parse"},
		{"bad timeout", "", map[string]string{EnvTimeout: "soon"}, EnvTimeout},
		{"negative timeout", "strategy_timeout: -1s", nil, "strategy_timeout"},
		{"bad bool", "", map[string]string{EnvContinueOnAmbiguous: "maybe"}, EnvContinueOnAmbiguous},
		{"bad level", "", map[string]string{EnvLogLevel: "loud"}, "log.level"},
		{"bad format", "log:\n  format: xml\n", nil, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = writeFile(t, "askgo.yaml", tt.yaml)
			}
			_, err := Load(path, filepath.Join(t.TempDir(), "none.env"))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for an explicit config path that does not exist")
	}
}
