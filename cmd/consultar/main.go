package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/eme-collab/consultor-inteligente-api/internal/cache"
	"github.com/eme-collab/consultor-inteligente-api/internal/catalog"
	"github.com/eme-collab/consultor-inteligente-api/internal/config"
	"github.com/eme-collab/consultor-inteligente-api/internal/consultant"
	"github.com/eme-collab/consultor-inteligente-api/internal/querylog"
	"github.com/eme-collab/consultor-inteligente-api/internal/recommend"
	"github.com/eme-collab/consultor-inteligente-api/internal/render"
	"github.com/eme-collab/consultor-inteligente-api/pkg/llm"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

const defaultQuery = "preciso de um celular com boa bateria e bom custo-benefício"

type llmClient interface {
	llm.IntentExtractor
	llm.Synthesizer
}

func newLLMClient() (llmClient, error) {
	provider := getenvDefault("LLM_PROVIDER", config.ProviderOpenAI)

	switch provider {
	case config.ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required with LLM_PROVIDER=%s", provider)
		}
		return llm.NewOpenAIClient(key), nil
	case config.ProviderAnthropic:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required with LLM_PROVIDER=%s", provider)
		}
		return llm.NewAnthropicClient(key), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}

// Runs one consultation from the command line and prints the rendered
// response. Logs go to stderr so stdout carries only the document.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if query == "" {
		query = defaultQuery
	}

	client, err := newLLMClient()
	if err != nil {
		log.Fatalf("error selecting LLM provider: %v", err)
	}

	store, err := catalog.Load(
		getenvDefault("CATALOG_PATH", "data/celulares.json"),
		getenvDefault("RETAILERS_PATH", "data/lojas.json"),
	)
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("error building renderer: %v", err)
	}

	var searcher search.Client
	if key := os.Getenv("SERPER_API_KEY"); key != "" {
		searcher = search.NewSerperClient(key)
	}

	svc := consultant.New(consultant.Deps{
		Extractor:   client,
		Synthesizer: client,
		Catalog:     store,
		Ranker:      recommend.NewRanker(0),
		Retailers:   recommend.NewRetailerSelector(store.Anchors(), store.Rotating(), 0),
		Cache:       cache.NewMemory(time.Hour, 16),
		Renderer:    renderer,
		QueryLog:    querylog.NewFileRecorder(getenvDefault("QUERY_LOG_PATH", "consultas.log")),
		Search:      searcher,
	})

	resposta, err := svc.Consultar(context.Background(), query)
	if err != nil {
		log.Fatalf("error running consultation: %v", err)
	}

	fmt.Println(resposta)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
