package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// defaultModels maps each provider to its recommended chat model.
var defaultModels = map[ProviderType]string{
	ProviderGroq:   "llama-3.3-70b-versatile",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "llama3",
}

// APIKeyEnvVar returns the environment variable holding the API key for a
// provider, or "" if the provider needs none.
func APIKeyEnvVar(p ProviderType) string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGroq:
		return "GROQ_API_KEY"
	default:
		return ""
	}
}

// RunWizard runs an interactive configuration wizard, saves the result to
// .teamlens.yml, and returns it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to teamlens! Let's configure your workspace.")
	fmt.Println()

	cfg := DefaultConfig()

	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"groq", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	modelPrompt := promptui.Prompt{
		Label:   "Chat model",
		Default: defaultModels[cfg.Provider],
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	dataPrompt := promptui.Prompt{
		Label:   "Snapshot file patterns (comma-separated globs)",
		Default: strings.Join(cfg.Data, ","),
	}
	dataStr, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data patterns: %w", err)
	}
	cfg.Data = splitAndTrim(dataStr)

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the profile index",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running teamlens ask.\n", envVar)
		}
	}
	if cfg.Provider != ProviderOllama && os.Getenv("OPENAI_API_KEY") == "" {
		fmt.Println("Note: OPENAI_API_KEY is also needed for embeddings.")
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
