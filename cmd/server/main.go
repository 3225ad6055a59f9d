// Command server starts the career-gap-analysis HTTP API server.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerengine/careerengine/internal/apihandler"
	"github.com/careerengine/careerengine/internal/clock"
	"github.com/careerengine/careerengine/internal/config"
	"github.com/careerengine/careerengine/internal/engine"
	"github.com/careerengine/careerengine/internal/extractioncache"
	"github.com/careerengine/careerengine/internal/extractor"
	"github.com/careerengine/careerengine/internal/gapanalysis"
	"github.com/careerengine/careerengine/internal/llmclient"
	"github.com/careerengine/careerengine/internal/mapper"
	"github.com/careerengine/careerengine/internal/obslog"
	"github.com/careerengine/careerengine/internal/orchestrator"
	"github.com/careerengine/careerengine/internal/store"
	"github.com/careerengine/careerengine/internal/taxonomy"
	"github.com/careerengine/careerengine/internal/vectorindex"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional, layered over defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger := obslog.New(cfg.Logging.Format, cfg.Logging.Level)

	dsn := os.Getenv(cfg.Database.DSNEnv)
	db, err := store.Open(dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	resumes := store.NewResumeStore(db)
	jobs := store.NewJobStore(db)
	runs := store.NewProcessingRunStore(db)
	results := store.NewResultStore(db)
	reportStatus := store.NewReportStatusStore(db)
	cacheStore := store.NewExtractionCacheStore(db)

	tax := taxonomy.New()
	embedder := vectorindex.NewHashEmbedder(256)
	index, err := vectorindex.NewInMemoryIndex(tax, embedder)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build vector index")
	}

	var ex extractor.Extractor
	if cfg.LLM.TestMode {
		ex = extractor.NewKeywordExtractor()
	} else {
		apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
		llm := llmclient.NewClaudeClient(apiKey, cfg.LLM.Model, cfg.LLM.RateLimitRPS, logger)
		ex = extractor.NewLLMExtractor(llm, cfg.Extraction.Mode, time.Duration(cfg.LLM.TimeoutSecs)*time.Second, cfg.Extraction.CapNiceToHave)
	}

	m := mapper.New(index, tax)
	analyzer := gapanalysis.New()
	cache := extractioncache.New(cacheStore, time.Duration(cfg.Database.CacheJoinWindowSeconds)*time.Second, clock.Real{})

	eng := engine.New(engine.Deps{
		Resumes:      resumes,
		Jobs:         jobs,
		Runs:         runs,
		Results:      results,
		ReportStatus: reportStatus,
		Cache:        cache,
		Extractor:    ex,
		Mapper:       m,
		Analyzer:     analyzer,
		Config:       cfg,
		Clock:        clock.Real{},
		Logger:       logger,
	})

	orch := orchestrator.New(resumes, jobs, eng, logger)

	analyzeHandler := apihandler.NewHandler(orch, logger)
	taxonomyHandler := taxonomy.NewHandler(logger)

	mux := http.NewServeMux()
	analyzeHandler.RegisterRoutes(mux)
	taxonomyHandler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-quit
	logger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server stopped")
}
