package config

// DefaultConfigFile is the config path used when none is given.
const DefaultConfigFile = ".teamlens.yml"

// DefaultConfig returns the configuration used before any file or
// environment overrides.
func DefaultConfig() *Config {
	return &Config{
		Data:           []string{"data/*.json"},
		OutputDir:      ".teamlens",
		Provider:       ProviderGroq,
		Model:          "llama-3.3-70b-versatile",
		TopK:           3,
		ChunkSize:      500,
		ChunkOverlap:   200,
		TimeoutSeconds: 60,
		Serve: ServeConfig{
			Port: 8710,
		},
	}
}
