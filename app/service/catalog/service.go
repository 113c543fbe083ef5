package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"mecabot/app/client/chatmodel"
	"mecabot/app/config"

	chromem "github.com/philippgille/chromem-go"
	"github.com/samber/do"
	"github.com/samber/oops"
)

const (
	collectionName   = "productos"
	indexConcurrency = 4
)

type Service struct {
	cfg        *config.Config
	products   []Product
	collection *chromem.Collection
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	appCtx := do.MustInvoke[context.Context](di)

	products, err := loadProducts(cfg.Catalog.Path)
	if err != nil {
		return nil, oops.Errorf("failed to load catalog: %w", err)
	}

	embedder := chatmodel.New(cfg.LLM.Embedding)

	db := chromem.NewDB()
	collection, err := db.GetOrCreateCollection(collectionName, nil, toEmbeddingFunc(embedder))
	if err != nil {
		return nil, oops.Errorf("failed to create collection: %w", err)
	}

	docs, err := buildDocuments(products)
	if err != nil {
		return nil, oops.Errorf("failed to build index documents: %w", err)
	}

	if len(docs) > 0 {
		if err = collection.AddDocuments(appCtx, docs, indexConcurrency); err != nil {
			return nil, oops.Errorf("failed to index catalog: %w", err)
		}
	}

	slog.Info("Catalog indexed",
		"products", len(products),
		"documents", len(docs))

	return &Service{
		cfg:        cfg,
		products:   products,
		collection: collection,
	}, nil
}

func (s *Service) Count() int {
	return len(s.products)
}

// SearchSimilar embeds the query and returns up to budget products in the
// store's similarity order. Failures degrade to an empty result; downstream
// turns that into a "not found" reply while the error goes to the log.
func (s *Service) SearchSimilar(ctx context.Context, query string, budget int) []Product {
	if budget <= 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	count := s.collection.Count()
	if count == 0 {
		return nil
	}

	limit := budget * chunkOverfetch
	if limit > count {
		limit = count
	}

	results, err := s.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		slog.Error("Similarity search failed",
			"query", query,
			"error", err)
		return nil
	}

	seen := make(map[string]struct{}, budget)
	out := make([]Product, 0, budget)

	for _, r := range results {
		if r.Similarity < s.cfg.Catalog.SimilarityThreshold {
			continue
		}

		ref := r.Metadata["product"]
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}

		idx, err := strconv.Atoi(ref)
		if err != nil || idx < 0 || idx >= len(s.products) {
			continue
		}

		out = append(out, s.products[idx])
		if len(out) >= budget {
			break
		}
	}

	return out
}
