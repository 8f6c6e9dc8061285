// Package writing implements the second pipeline stage: turning the
// normalized research text into a short article via the generation
// collaborator.
package writing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/nadavc/scribeai/internal/llm"
	"github.com/nadavc/scribeai/internal/pipeline"
	"github.com/nadavc/scribeai/internal/state"
)

type Stage struct {
	generator llm.Generator
}

func NewStage(generator llm.Generator) (*Stage, error) {
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	return &Stage{generator: generator}, nil
}

func (s *Stage) Name() string { return "writing" }

// Run builds the article prompt from the topic and research data and invokes
// the generator once. The runner's ordering guarantee means ResearchData is
// always present here; an absent value indicates the stage was wired out of
// order and is reported as a plain error, not a classified run failure.
func (s *Stage) Run(ctx context.Context, st state.State, cfg pipeline.Config) (state.State, error) {
	if st.ResearchData == "" {
		return state.State{}, errors.New("writing stage invoked without research data")
	}

	prompt := BuildPrompt(st.Topic, st.ResearchData)

	article, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return state.State{}, pipeline.NewStageError(pipeline.KindGenerationUnavailable, s.Name(), err)
	}

	article = strings.TrimSpace(article)
	if article == "" {
		return state.State{}, pipeline.NewStageError(
			pipeline.KindGenerationUnavailable, s.Name(),
			errors.New("generator returned empty text"),
		)
	}

	// The prompt asks for exactly three paragraphs but the collaborator is
	// not trusted to obey; the observed count is logged, never enforced.
	if cfg.Debug {
		cfg.Logger.Debug("writing complete", "run_id", cfg.RunID, "paragraphs", CountParagraphs(article), "chars", len(article))
	}

	return state.State{
		Article: article,
		Messages: []llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeHuman, prompt),
			llms.TextParts(schema.ChatMessageTypeAI, article),
		},
	}, nil
}

// BuildPrompt embeds the topic and research findings into the article
// instruction.
func BuildPrompt(topic, researchData string) string {
	var sb strings.Builder
	sb.WriteString("You are a professional tech writer. Write engaging articles based on the research provided.\n\n")
	sb.WriteString("Write a 3-paragraph article about ")
	sb.WriteString(topic)
	sb.WriteString(".\n\nResearch findings:\n")
	sb.WriteString(researchData)
	sb.WriteString("\n\nRequirements:\n")
	sb.WriteString("- Start with an engaging hook\n")
	sb.WriteString("- Explain key developments clearly\n")
	sb.WriteString("- End with future implications\n")
	sb.WriteString("- Target audience: Technical professionals\n\n")
	sb.WriteString("Write the article:")
	return sb.String()
}

// CountParagraphs counts blank-line separated blocks of text.
func CountParagraphs(text string) int {
	count := 0
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
