package llm

import (
	"fmt"
	"os"
)

// NewProvider builds a chat provider from its configured name. OpenAI
// and Groq need their API key in the environment; Ollama needs only a
// reachable host.
func NewProvider(providerType string, model string) (Provider, error) {
	switch providerType {
	case "openai":
		key, err := requireEnv("OPENAI_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewOpenAIProvider(key, model), nil

	case "groq":
		key, err := requireEnv("GROQ_API_KEY")
		if err != nil {
			return nil, err
		}
		return NewGroqProvider(key, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	return v, nil
}
