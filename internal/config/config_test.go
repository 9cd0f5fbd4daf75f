package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vizqa.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
[generation]
chart_type = "scatter"
batch_size = 16
output_size = 4
max_retries = 5
attempt_timeout = "90s"

[models]
generation = "command-a-03-2025"
judge = "c4ai-aya-vision-32b"

[paths]
dataset = "./data/covid.csv"
image_dir = "./out/charts"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generation.ChartType != "scatter" {
		t.Errorf("chart_type = %s", cfg.Generation.ChartType)
	}
	if cfg.Generation.BatchSize != 16 || cfg.Generation.OutputSize != 4 {
		t.Errorf("sizes = %d/%d", cfg.Generation.BatchSize, cfg.Generation.OutputSize)
	}
	if cfg.Generation.MaxRetries != 5 {
		t.Errorf("max_retries = %d", cfg.Generation.MaxRetries)
	}
	if got := cfg.Generation.AttemptTimeoutDuration(); got != 90*time.Second {
		t.Errorf("attempt timeout = %v", got)
	}
	if cfg.Paths.ImageDir != "./out/charts" {
		t.Errorf("image_dir = %s", cfg.Paths.ImageDir)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[paths]
dataset = "./data/covid.csv"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Generation.ChartType != "bar" {
		t.Errorf("default chart_type = %s, want bar", cfg.Generation.ChartType)
	}
	if cfg.Generation.BatchSize != 32 {
		t.Errorf("default batch_size = %d, want 32", cfg.Generation.BatchSize)
	}
	if cfg.Generation.OutputSize != 8 {
		t.Errorf("default output_size = %d, want 8", cfg.Generation.OutputSize)
	}
	if cfg.Generation.MaxRetries != 10 {
		t.Errorf("default max_retries = %d, want 10", cfg.Generation.MaxRetries)
	}
	if cfg.Models.Generation != "command-a-03-2025" {
		t.Errorf("default generation model = %s", cfg.Models.Generation)
	}
	if cfg.Models.Judge != "c4ai-aya-vision-32b" {
		t.Errorf("default judge model = %s", cfg.Models.Judge)
	}
	if cfg.Paths.OutcomeDB != "./outcomes.db" {
		t.Errorf("default outcome_db = %s", cfg.Paths.OutcomeDB)
	}
}

func TestLoad_MissingDataset(t *testing.T) {
	path := writeConfig(t, `
[generation]
chart_type = "bar"
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "paths.dataset is required") {
		t.Errorf("expected missing dataset error, got %v", err)
	}
}

func TestLoad_InvalidChartType(t *testing.T) {
	path := writeConfig(t, `
[generation]
chart_type = "hologram"

[paths]
dataset = "./data/covid.csv"
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid chart_type") {
		t.Errorf("expected chart type error, got %v", err)
	}
}

func TestLoad_InvalidRetries(t *testing.T) {
	path := writeConfig(t, `
[generation]
max_retries = -2

[paths]
dataset = "./data/covid.csv"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative max_retries")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `this is not valid toml [[[`)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_PathTraversalRejected(t *testing.T) {
	if _, err := Load("../../etc/vizqa.toml"); err == nil {
		t.Error("expected traversal rejection")
	}
}

func TestAttemptTimeoutDuration_Fallback(t *testing.T) {
	g := GenerationConfig{AttemptTimeout: "not-a-duration"}
	if got := g.AttemptTimeoutDuration(); got != 2*time.Minute {
		t.Errorf("fallback timeout = %v, want 2m", got)
	}
}

func TestAPIKey_FromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "  secret-key  ")
	key, err := APIKey()
	if err != nil {
		t.Fatalf("APIKey: %v", err)
	}
	if key != "secret-key" {
		t.Errorf("key = %q, want trimmed", key)
	}

	t.Setenv(APIKeyEnv, "")
	if _, err := APIKey(); err == nil {
		t.Error("expected error when env var unset")
	}
}
