// Package rag answers natural-language questions over the profile corpus:
// retrieve the most similar chunks, template a prompt, and call the
// chat-completion provider. The correlation core is read-only from here; a
// failed call can never corrupt cluster state.
package rag

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teamlens/teamlens/internal/llm"
	"github.com/teamlens/teamlens/internal/vectordb"
)

// Collaborator failure classes. Callers can tell "nothing relevant found"
// (a normal empty retrieval) from "collaborator unavailable" (these errors).
var (
	ErrRetrievalFailed  = errors.New("retrieval failed")
	ErrGenerationFailed = errors.New("answer generation failed")
)

const (
	defaultTopK    = 3
	defaultTimeout = 60 * time.Second
)

// Engine wires the vector store and the completion provider into a
// question-answering pipeline.
type Engine struct {
	store    vectordb.VectorStore
	provider llm.Provider
	model    string
	topK     int
	timeout  time.Duration
}

// Answer is a generated response with its supporting context and usage
// metadata.
type Answer struct {
	Text         string        `json:"text"`
	Mode         Mode          `json:"mode"`
	Fragments    []string      `json:"fragments"`
	Model        string        `json:"model"`
	InputTokens  int           `json:"input_tokens"`
	OutputTokens int           `json:"output_tokens"`
	CostUSD      float64       `json:"cost_usd"`
	Duration     time.Duration `json:"duration"`
}

// NewEngine creates an answer engine. topK and timeout fall back to defaults
// when zero.
func NewEngine(store vectordb.VectorStore, provider llm.Provider, model string, topK int, timeout time.Duration) *Engine {
	if topK <= 0 {
		topK = defaultTopK
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Engine{
		store:    store,
		provider: provider,
		model:    model,
		topK:     topK,
		timeout:  timeout,
	}
}

// Retrieve returns the top-k fragments for the query within the mode's
// corpus. An empty result is a normal outcome, not an error.
func (e *Engine) Retrieve(ctx context.Context, query string, mode Mode) ([]string, error) {
	clusterType := vectordb.ClusterEmployee
	if mode == ModeAnonymous {
		clusterType = vectordb.ClusterTask
	}
	filter := &vectordb.SearchFilter{ClusterType: &clusterType}

	results, err := e.store.Search(ctx, query, e.topK, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}

	fragments := make([]string, 0, len(results))
	for _, r := range results {
		fragments = append(fragments, r.Document.Content)
	}
	return fragments, nil
}

// Answer retrieves context for the question and generates a response. Both
// network calls share one deadline; on expiry the engine fails closed with a
// typed error instead of blocking.
func (e *Engine) Answer(ctx context.Context, question string, mode Mode) (*Answer, error) {
	if question == "" {
		return nil, fmt.Errorf("question must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()

	fragments, err := e.Retrieve(ctx, question, mode)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(mode, question, fragments)

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:       e.model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return &Answer{
		Text:         resp.Content,
		Mode:         mode,
		Fragments:    fragments,
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		CostUSD:      llm.EstimateCost(resp.Model, resp.InputTokens, resp.OutputTokens),
		Duration:     time.Since(start),
	}, nil
}
