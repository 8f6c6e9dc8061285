package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/nadavc/scribeai/internal/config"
	"github.com/nadavc/scribeai/internal/llm"
	"github.com/nadavc/scribeai/internal/pipeline"
	"github.com/nadavc/scribeai/internal/research"
	"github.com/nadavc/scribeai/internal/search"
	"github.com/nadavc/scribeai/internal/server"
	"github.com/nadavc/scribeai/internal/writing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	runner, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(runner, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// Generation calls are slow; give handlers room before cutting them off.
		WriteTimeout: 3 * time.Minute,
	}

	logger.Info("listening", "addr", cfg.ListenAddr)
	return srv.ListenAndServe()
}

func buildPipeline(cfg *config.Config) (*pipeline.Runner, error) {
	searchClient, err := search.NewTavilyClient(cfg.TavilyAPIKey)
	if err != nil {
		return nil, err
	}
	generator, err := llm.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		return nil, err
	}

	researchStage, err := research.NewStage(searchClient)
	if err != nil {
		return nil, err
	}
	writingStage, err := writing.NewStage(generator)
	if err != nil {
		return nil, err
	}

	return pipeline.New("research-writer",
		pipeline.StageSpec{Stage: researchStage, Failure: pipeline.KindResearchFailed},
		pipeline.StageSpec{Stage: writingStage, Failure: pipeline.KindWritingFailed},
	)
}
