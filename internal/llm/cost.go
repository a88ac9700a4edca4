package llm

// tokenPrice holds a model's USD price per million input and output tokens.
type tokenPrice struct {
	in  float64
	out float64
}

var tokenPrices = map[string]tokenPrice{
	"gpt-4o":      {in: 2.50, out: 10.00},
	"gpt-4o-mini": {in: 0.15, out: 0.60},

	"llama-3.3-70b-versatile": {in: 0.59, out: 0.79},
	"llama-3.1-8b-instant":    {in: 0.05, out: 0.08},
}

// EstimateCost returns the USD cost of a completion. Unknown models,
// including anything served by Ollama, cost zero.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	p, ok := tokenPrices[model]
	if !ok {
		return 0
	}
	return (float64(inputTokens)*p.in + float64(outputTokens)*p.out) / 1_000_000
}

// EstimateTokens approximates the token count of text at four
// characters per token, rounding non-empty text up to one.
func EstimateTokens(text string) int {
	n := len(text) / 4
	if n == 0 && len(text) > 0 {
		return 1
	}
	return n
}
