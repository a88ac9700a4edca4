package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderGroq || cfg.Model != "llama-3.3-70b-versatile" {
		t.Errorf("defaults = %s/%s", cfg.Provider, cfg.Model)
	}
	if cfg.TopK != 3 || cfg.ChunkSize != 500 || cfg.ChunkOverlap != 200 {
		t.Errorf("retrieval defaults = %d/%d/%d", cfg.TopK, cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.Serve.Port != 8710 {
		t.Errorf("serve port = %d", cfg.Serve.Port)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamlens.yml")
	content := `
provider: openai
model: gpt-4o-mini
top_k: 5
serve:
  port: 9000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOpenAI || cfg.Model != "gpt-4o-mini" || cfg.TopK != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Serve.Port != 9000 {
		t.Errorf("serve port = %d, want 9000", cfg.Serve.Port)
	}
	// Untouched keys keep their defaults.
	if cfg.ChunkSize != 500 {
		t.Errorf("chunk size = %d, want default 500", cfg.ChunkSize)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TEAMLENS_MODEL", "llama-3.1-8b-instant")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "llama-3.1-8b-instant" {
		t.Errorf("model = %q, want env override", cfg.Model)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teamlens.yml")
	cfg := DefaultConfig()
	cfg.Provider = ProviderOllama
	cfg.Model = "llama3"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Provider != ProviderOllama || loaded.Model != "llama3" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"missing data", func(c *Config) { c.Data = nil }, true},
		{"unknown provider", func(c *Config) { c.Provider = "claude" }, true},
		{"missing model", func(c *Config) { c.Model = "" }, true},
		{"bad embedding provider", func(c *Config) { c.EmbeddingProvider = "weird" }, true},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"negative top_k", func(c *Config) { c.TopK = -1 }, true},
		{"overlap >= size", func(c *Config) { c.ChunkSize = 100; c.ChunkOverlap = 100 }, true},
		{"bad port", func(c *Config) { c.Serve.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
