package consultant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eme-collab/consultor-inteligente-api/internal/cache"
	"github.com/eme-collab/consultor-inteligente-api/internal/model"
	"github.com/eme-collab/consultor-inteligente-api/internal/querylog"
	"github.com/eme-collab/consultor-inteligente-api/internal/recommend"
	"github.com/eme-collab/consultor-inteligente-api/internal/render"
	"github.com/eme-collab/consultor-inteligente-api/pkg/llm"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

const (
	MsgNaoEntendi   = "Desculpe, não consegui entender o que você precisa. Poderia tentar de outra forma?"
	MsgSemResultado = "Puxa, fiz uma busca aqui mas não encontrei nenhum celular que se encaixe perfeitamente no seu pedido. Que tal tentarmos outros termos?"
)

type PhoneSource interface {
	Phones() []model.Phone
}

type Deps struct {
	Extractor   llm.IntentExtractor
	Synthesizer llm.Synthesizer
	Catalog     PhoneSource
	Ranker      *recommend.Ranker
	Retailers   *recommend.RetailerSelector
	Cache       cache.Store
	Renderer    *render.Renderer
	QueryLog    querylog.Recorder
	Search      search.Client // optional; nil disables web context
}

// Service runs the consultation pipeline: intent extraction, cache lookup,
// local filtering and ranking, remote synthesis and presentation.
type Service struct {
	deps Deps
}

func New(deps Deps) *Service {
	return &Service{deps: deps}
}

// Consultar answers one user query. Apologies for not-understood queries and
// empty results are normal returns; an error means the caller should reply
// with a generic failure.
func (s *Service) Consultar(ctx context.Context, query string) (string, error) {
	if err := s.deps.QueryLog.Record(query); err != nil {
		slog.Warn("query log write failed", "error", err)
	}

	intent, err := s.deps.Extractor.ExtractIntent(ctx, query)
	if err != nil {
		return "", fmt.Errorf("extract intent: %w", err)
	}
	if intent.Empty() {
		slog.Info("query produced no usable intent", "query", query)
		return MsgNaoEntendi, nil
	}

	key := intent.CacheKey()
	if doc, ok := s.deps.Cache.Get(ctx, key); ok {
		slog.Info("answering from cache", "key", key)
		return doc, nil
	}

	shortlist := s.deps.Ranker.Shortlist(intent, s.deps.Catalog.Phones())
	if len(shortlist) == 0 {
		slog.Info("no catalog candidates for intent",
			"categoria_preco", intent.CategoriaPreco, "focos", intent.Focos)
		return MsgSemResultado, nil
	}

	recs, err := s.deps.Synthesizer.Recommend(ctx, shortlist, intent, s.webContext(ctx, query))
	if err != nil {
		return "", fmt.Errorf("synthesize recommendations: %w", err)
	}
	if len(recs) == 0 {
		return MsgSemResultado, nil
	}

	doc, err := s.deps.Renderer.Render(render.Document{
		Recomendacoes: recs,
		Lojas:         s.deps.Retailers.Select(),
	})
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	s.deps.Cache.Put(ctx, key, doc)
	return doc, nil
}

// webContext fetches search snippets for the synthesizer when a search
// client is configured. Failures degrade to an empty context.
func (s *Service) webContext(ctx context.Context, query string) []search.Snippet {
	if s.deps.Search == nil {
		return nil
	}

	snippets, err := s.deps.Search.Search(ctx, query)
	if err != nil {
		slog.Warn("web search failed, continuing without context",
			"source", s.deps.Search.Name(), "error", err)
		return nil
	}
	return snippets
}
