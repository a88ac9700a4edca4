package llm

import (
	"math"
	"testing"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		model  string
		input  int
		output int
		want   float64
	}{
		{"llama-3.3-70b-versatile", 1_000_000, 1_000_000, 1.38},
		{"gpt-4o-mini", 100_000, 10_000, 0.021},
		{"unknown-model", 500, 500, 0},
		{"gpt-4o", 0, 0, 0},
	}

	for _, tt := range tests {
		got := EstimateCost(tt.model, tt.input, tt.output)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EstimateCost(%s, %d, %d) = %v, want %v",
				tt.model, tt.input, tt.output, got, tt.want)
		}
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("EstimateTokens(\"\") = %d, want 0", got)
	}
	if got := EstimateTokens("ab"); got != 1 {
		t.Errorf("short text = %d, want at least 1", got)
	}
	if got := EstimateTokens(string(make([]byte, 400))); got != 100 {
		t.Errorf("400 chars = %d tokens, want 100", got)
	}
}

func TestNewProviderUnsupported(t *testing.T) {
	if _, err := NewProvider("claude", "m"); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestNewProviderRequiresKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewProvider("openai", "gpt-4o-mini"); err == nil {
		t.Error("expected error without OPENAI_API_KEY")
	}

	t.Setenv("GROQ_API_KEY", "")
	if _, err := NewProvider("groq", "llama-3.3-70b-versatile"); err == nil {
		t.Error("expected error without GROQ_API_KEY")
	}
}

func TestNewProviderOllamaDefaultsHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	p, err := NewProvider("ollama", "llama3")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name = %q", p.Name())
	}
}
