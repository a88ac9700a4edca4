package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/teamlens/teamlens/internal/analytics"
	"github.com/teamlens/teamlens/internal/audit"
	"github.com/teamlens/teamlens/internal/cluster"
	"github.com/teamlens/teamlens/internal/config"
	"github.com/teamlens/teamlens/internal/embeddings"
	"github.com/teamlens/teamlens/internal/extract"
	"github.com/teamlens/teamlens/internal/llm"
	"github.com/teamlens/teamlens/internal/rag"
	"github.com/teamlens/teamlens/internal/source"
	"github.com/teamlens/teamlens/internal/vectordb"
)

// loadConfig loads and validates the config, providing a friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `teamlens init` to create a config file", err)
	}
	return cfg, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// Cloud chat providers without native embeddings use OpenAI embeddings.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}

	switch provider {
	case config.ProviderOllama:
		model := cfg.EmbeddingModel
		if model == "" {
			model = "nomic-embed-text"
		}
		return embeddings.NewOllamaEmbedder(model, 768, os.Getenv("OLLAMA_HOST")), nil
	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for embeddings")
		}
		model := embeddings.ModelTextEmbedding3Small
		if cfg.EmbeddingModel != "" {
			model = embeddings.OpenAIModel(cfg.EmbeddingModel)
		}
		return embeddings.NewOpenAIEmbedder(apiKey, model), nil
	}
}

// createLLMProviderFromConfig creates an LLM provider based on config.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	return llm.NewProvider(string(cfg.Provider), cfg.Model)
}

// openStore creates a vector store using the configured embedder and loads
// any persisted index from the output directory.
func openStore(ctx context.Context, cfg *config.Config) (vectordb.VectorStore, error) {
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	store, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}
	if err := store.Load(ctx, cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("loading profile index: %w\nRun `teamlens ingest` first", err)
	}
	return store, nil
}

// newEngine builds the retrieval engine from the config.
func newEngine(cfg *config.Config, store vectordb.VectorStore) (*rag.Engine, error) {
	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return rag.NewEngine(store, provider, cfg.Model, cfg.TopK, timeout), nil
}

// openHistory opens the query history database in the output directory.
func openHistory(cfg *config.Config) (*audit.Store, error) {
	return audit.Open(filepath.Join(cfg.OutputDir, "history.db"))
}

// correlateSnapshot loads the configured snapshots and runs both
// correlators plus the analytics pass.
func correlateSnapshot(cfg *config.Config) (*source.Snapshot, []cluster.TaskCluster, []cluster.EmployeeCluster, *analytics.Report, error) {
	snap, err := source.LoadGlobs(cfg.Data)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	taskPattern := cfg.TaskIDPattern
	if taskPattern == "" {
		taskPattern = extract.DefaultTaskIDPattern
	}
	resolverPattern := cfg.ResolverPattern
	if resolverPattern == "" {
		resolverPattern = extract.DefaultResolverPattern
	}

	taskIDs, err := extract.NewTaskIDs(taskPattern)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("task ID pattern: %w", err)
	}
	resolver, err := extract.NewResolver(resolverPattern)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resolver pattern: %w", err)
	}

	tasks := cluster.NewTaskCorrelator(taskIDs, extract.CommitIDs{}).Correlate(snap.Tickets, snap.Commits, snap.Emails)
	employees := cluster.NewEmployeeCorrelator(resolver).Correlate(snap.Tickets, snap.Commits, snap.Emails)
	report := analytics.Analyze(employees, snap.Commits, snap.Emails)

	return snap, tasks, employees, &report, nil
}

// reportPath is where the markdown team report is written.
func reportPath(cfg *config.Config) string {
	return filepath.Join(cfg.OutputDir, "report.md")
}
