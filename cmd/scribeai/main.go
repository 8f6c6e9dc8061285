package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nadavc/scribeai/internal/config"
	"github.com/nadavc/scribeai/internal/llm"
	"github.com/nadavc/scribeai/internal/pipeline"
	"github.com/nadavc/scribeai/internal/research"
	"github.com/nadavc/scribeai/internal/search"
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

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter the topic you'd like to research: ")
	topic, _ := reader.ReadString('\n')
	topic = strings.TrimSpace(topic)

	fmt.Printf("\nResearching and writing about: %s\n", topic)
	fmt.Println("This may take a minute...")

	article, err := runner.Run(context.Background(), topic)
	if err != nil {
		return err
	}

	divider := strings.Repeat("=", 60)
	fmt.Println("\n" + divider)
	fmt.Println("GENERATED ARTICLE")
	fmt.Println(divider)
	fmt.Printf("\nTopic: %s\n\n%s\n\n", topic, article)
	fmt.Println(divider)
	return nil
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
