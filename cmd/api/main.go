package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/eme-collab/consultor-inteligente-api/internal/cache"
	"github.com/eme-collab/consultor-inteligente-api/internal/catalog"
	"github.com/eme-collab/consultor-inteligente-api/internal/config"
	"github.com/eme-collab/consultor-inteligente-api/internal/consultant"
	"github.com/eme-collab/consultor-inteligente-api/internal/handler"
	"github.com/eme-collab/consultor-inteligente-api/internal/querylog"
	"github.com/eme-collab/consultor-inteligente-api/internal/recommend"
	"github.com/eme-collab/consultor-inteligente-api/internal/render"
	"github.com/eme-collab/consultor-inteligente-api/pkg/llm"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

const defaultFrontendOrigin = "https://consultor-inteligente-frontend.onrender.com"

type llmClient interface {
	llm.IntentExtractor
	llm.Synthesizer
	ModelName() string
}

func newLLMClient(cfg *config.Config) llmClient {
	if cfg.Provider == config.ProviderAnthropic {
		return llm.NewAnthropicClient(cfg.AnthropicKey)
	}
	return llm.NewOpenAIClient(cfg.OpenAIKey)
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	settingsPath := os.Getenv("CONFIG_PATH")
	if settingsPath == "" {
		settingsPath = "config.yaml"
	}

	cfg, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	store, err := catalog.Load(cfg.Settings.CatalogPath, cfg.Settings.RetailersPath)
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}
	slog.Info("catalog loaded", "phones", store.Len(),
		"anchors", len(store.Anchors()), "rotating", len(store.Rotating()))

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("error building renderer: %v", err)
	}

	var responseCache cache.Store
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.Settings.CacheTTL())
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisCache.Close()
		responseCache = redisCache
		slog.Info("response cache on Redis")
	} else {
		responseCache = cache.NewMemory(cfg.Settings.CacheTTL(), cfg.Settings.CacheMaxEntries)
	}

	var searcher search.Client
	if cfg.SerperKey != "" {
		searcher = search.NewSerperClient(cfg.SerperKey)
		slog.Info("web search context enabled", "source", searcher.Name())
	}

	client := newLLMClient(cfg)
	slog.Info("llm provider selected", "provider", cfg.Provider, "model", client.ModelName())

	recorder := querylog.NewFileRecorder(cfg.Settings.QueryLogPath)

	svc := consultant.New(consultant.Deps{
		Extractor:   client,
		Synthesizer: client,
		Catalog:     store,
		Ranker:      recommend.NewRanker(0),
		Retailers:   recommend.NewRetailerSelector(store.Anchors(), store.Rotating(), 0),
		Cache:       responseCache,
		Renderer:    renderer,
		QueryLog:    recorder,
		Search:      searcher,
	})

	consultaHandler := handler.NewConsultaHandler(svc, recorder, cfg.LogToken)

	r := gin.Default()

	allowedOrigins := []string{defaultFrontendOrigin, "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	allowedOrigins = append(allowedOrigins, cfg.Settings.ExtraOrigins...)

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/consultar", consultaHandler.Consultar)
	r.GET("/", consultaHandler.GetStatus)
	r.GET("/logs/consultas", consultaHandler.GetQueryLog)

	err = r.Run(cfg.Settings.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
