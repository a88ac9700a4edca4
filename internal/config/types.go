package config

// ProviderType identifies a chat-completion or embedding provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGroq   ProviderType = "groq"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level teamlens configuration, corresponding to
// .teamlens.yml.
type Config struct {
	// Data holds one or more glob patterns resolving to snapshot JSON files.
	Data []string `yaml:"data" koanf:"data"`

	// OutputDir receives the persisted vector store and query history DB.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`

	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`

	// Retrieval and chunking knobs.
	TopK         int `yaml:"top_k" koanf:"top_k"`
	ChunkSize    int `yaml:"chunk_size" koanf:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap" koanf:"chunk_overlap"`

	// TimeoutSeconds bounds each retrieval + generation round trip.
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`

	// Correlation patterns; empty values select the built-in defaults.
	TaskIDPattern   string `yaml:"task_id_pattern" koanf:"task_id_pattern"`
	ResolverPattern string `yaml:"resolver_pattern" koanf:"resolver_pattern"`

	Serve ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
