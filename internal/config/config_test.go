package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGeneratorFileOverrides(t *testing.T) {
	path := writeFile(t, "generator.yaml", "tse_h: 25.0\ncompression_factor: 10\n")

	cfg, err := LoadGeneratorFile(path)
	if err != nil {
		t.Fatalf("LoadGeneratorFile: %v", err)
	}
	if cfg.TSEH != 25.0 {
		t.Errorf("TSEH = %g, want 25", cfg.TSEH)
	}
	if cfg.CompressionFactor != 10 {
		t.Errorf("CompressionFactor = %d, want 10", cfg.CompressionFactor)
	}
	// Untouched fields keep their defaults.
	if cfg.TSEV != 10.0 || cfg.AlphaH != 7.0 || cfg.AlphaV != 1.0 || cfg.TimeBuffer != 5.0 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadGeneratorFileInvalid(t *testing.T) {
	path := writeFile(t, "generator.yaml", "tse_h: -3\n")
	if _, err := LoadGeneratorFile(path); err == nil {
		t.Error("negative TSE_H should fail validation")
	}

	path = writeFile(t, "broken.yaml", "tse_h: [not a number\n")
	if _, err := LoadGeneratorFile(path); err == nil {
		t.Error("malformed YAML should fail")
	}

	if _, err := LoadGeneratorFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GENERATOR_CONFIG", "")

	cfg := Load()
	if cfg.Port != ":8080" {
		t.Errorf("port = %q, want :8080", cfg.Port)
	}
	if err := cfg.Generator.Validate(); err != nil {
		t.Errorf("default generator config invalid: %v", err)
	}
}

func TestLoadGeneratorFromEnv(t *testing.T) {
	path := writeFile(t, "generator.yaml", "tbuf: 12.5\n")
	t.Setenv("PORT", ":9999")
	t.Setenv("GENERATOR_CONFIG", path)

	cfg := Load()
	if cfg.Port != ":9999" {
		t.Errorf("port = %q, want :9999", cfg.Port)
	}
	if cfg.Generator.TimeBuffer != 12.5 {
		t.Errorf("tbuf = %g, want 12.5", cfg.Generator.TimeBuffer)
	}
}
