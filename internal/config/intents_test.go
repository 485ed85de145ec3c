package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadIntentsConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "intents.yaml")

	configContent := `keywords:
  medications:
    - ibuprofen
    - naproxen
  summary:
    - weekly recap

confidence:
  medication: 0.8
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("INTENTS_CONFIG_PATH", configPath)

	cfg, err := LoadIntentsConfig()
	if err != nil {
		t.Fatalf("LoadIntentsConfig() failed: %v", err)
	}

	if len(cfg.Keywords.Medications) != 2 || cfg.Keywords.Medications[1] != "naproxen" {
		t.Errorf("Expected overridden medications list, got %v", cfg.Keywords.Medications)
	}
	if len(cfg.Keywords.Summary) != 1 {
		t.Errorf("Expected 1 summary keyword, got %d", len(cfg.Keywords.Summary))
	}
	if cfg.Confidence.Medication != 0.8 {
		t.Errorf("Expected medication confidence 0.8, got %v", cfg.Confidence.Medication)
	}

	// Untouched sections keep their defaults
	def := DefaultIntentsConfig()
	if len(cfg.Keywords.MentalHealth) != len(def.Keywords.MentalHealth) {
		t.Errorf("Expected default mental health keywords, got %v", cfg.Keywords.MentalHealth)
	}
	if cfg.Confidence.SymptomWord != 0.85 {
		t.Errorf("Expected default symptom word confidence 0.85, got %v", cfg.Confidence.SymptomWord)
	}
}

func TestLoadIntentsConfig_DefaultPathMissing(t *testing.T) {
	t.Setenv("INTENTS_CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := LoadIntentsConfig()
	if err != nil {
		t.Fatalf("Expected built-in defaults when configs/intents.yaml is absent, got %v", err)
	}
	if cfg.Confidence.MentalHealth != 0.95 {
		t.Errorf("Expected default confidence 0.95, got %v", cfg.Confidence.MentalHealth)
	}
}

func TestLoadIntentsConfig_FileNotFound(t *testing.T) {
	t.Setenv("INTENTS_CONFIG_PATH", "/nonexistent/path/intents.yaml")

	_, err := LoadIntentsConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}

	if !contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadIntentsConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidContent := `keywords:
  medications:
    - ibuprofen
   wrong_level: [
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("INTENTS_CONFIG_PATH", configPath)

	_, err := LoadIntentsConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}

	if !contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate_ConfidenceOutOfRange(t *testing.T) {
	cfg := DefaultIntentsConfig()
	cfg.Confidence.Wellness = 1.5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for confidence above 1")
	}

	if !contains(err.Error(), "confidence.wellness") {
		t.Errorf("Expected error to name confidence.wellness, got: %v", err)
	}
}

func TestLoadIntentsConfig_ExplicitZeroConfidence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "intents.yaml")
	configContent := `confidence:
  summary: 0
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("INTENTS_CONFIG_PATH", configPath)

	cfg, err := LoadIntentsConfig()
	if err != nil {
		t.Fatalf("LoadIntentsConfig() failed: %v", err)
	}

	if cfg.Confidence.Summary != 0 {
		t.Errorf("Expected explicit summary confidence 0, got %v", cfg.Confidence.Summary)
	}
	if cfg.Confidence.Wellness != 0.90 {
		t.Errorf("Expected default wellness confidence 0.90, got %v", cfg.Confidence.Wellness)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestLoadIntentsConfig_ShippedFileMatchesDefaults(t *testing.T) {
	t.Setenv("INTENTS_CONFIG_PATH", filepath.Join("..", "..", "configs", "intents.yaml"))

	cfg, err := LoadIntentsConfig()
	if err != nil {
		t.Fatalf("LoadIntentsConfig() failed: %v", err)
	}

	if !reflect.DeepEqual(*cfg, DefaultIntentsConfig()) {
		t.Errorf("configs/intents.yaml drifted from the built-in defaults")
	}
}
