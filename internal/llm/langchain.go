package llm

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const defaultTemperature = 0.7

// LangchainGenerator adapts any langchaingo model to the Generator boundary.
type LangchainGenerator struct {
	model       llms.Model
	temperature float64
}

// NewGenerator wraps an existing model.
func NewGenerator(model llms.Model) *LangchainGenerator {
	return &LangchainGenerator{model: model, temperature: defaultTemperature}
}

// NewOpenAIGenerator builds a generator backed by an OpenAI chat model. The
// credential is injected explicitly; nothing here touches the environment.
func NewOpenAIGenerator(apiKey, model string) (*LangchainGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		return nil, errors.New("openai model is required")
	}
	m, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, errors.Wrap(err, "openai: create model")
	}
	return NewGenerator(m), nil
}

func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}
	return out, nil
}
