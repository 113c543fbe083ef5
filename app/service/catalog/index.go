package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	chromem "github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	chunkSize    = 800
	chunkOverlap = 80

	// Chunked products can surface more than once per query, so the store
	// is asked for extra results before collapsing chunks back to products.
	chunkOverfetch = 3
)

type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// toEmbeddingFunc adapts an Embedder to chromem's one-text-at-a-time shape.
func toEmbeddingFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vecs, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}

		if len(vecs) == 0 {
			return nil, fmt.Errorf("empty embedding response")
		}

		return vecs[0], nil
	}
}

// buildDocuments turns each product into one or more index documents: the
// name and category ride along with every description chunk so short
// queries still hit.
func buildDocuments(products []Product) ([]chromem.Document, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)

	var docs []chromem.Document

	for i, product := range products {
		base := strings.TrimSpace(product.Name + "\n" + product.Category)

		chunks, err := splitter.SplitText(product.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to split description of %q: %w", product.Name, err)
		}

		if len(chunks) == 0 {
			chunks = []string{""}
		}

		for j, chunk := range chunks {
			docs = append(docs, chromem.Document{
				ID:      fmt.Sprintf("%d-%d", i, j),
				Content: strings.TrimSpace(base + "\n" + chunk),
				Metadata: map[string]string{
					"product": strconv.Itoa(i),
				},
			})
		}
	}

	return docs, nil
}
