package embeddings

import (
	"context"

	chromem "github.com/philippgille/chromem-go"
)

// Embedder turns profile text into dense vectors. Implementations are
// safe for concurrent use.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions reports the vector width the model produces.
	Dimensions() int

	// Name identifies the backing model, e.g. "text-embedding-3-small".
	Name() string
}

// ChromemFunc adapts an Embedder to chromem-go's single-text callback.
func ChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vecs, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(vecs) == 0 {
			return nil, nil
		}
		return vecs[0], nil
	}
}
