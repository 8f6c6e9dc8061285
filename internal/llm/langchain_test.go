package llm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

type fakeModel struct {
	response string
	err      error
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangchainGenerator(t *testing.T) {
	t.Parallel()

	t.Run("PassesPromptAndReturnsText", func(t *testing.T) {
		t.Parallel()
		model := &fakeModel{response: "generated article"}
		gen := NewGenerator(model)

		out, err := gen.Generate(context.Background(), "write about goroutines")
		require.NoError(t, err)
		require.Equal(t, "generated article", out)

		require.Len(t, model.messages, 1)
		require.Equal(t, schema.ChatMessageTypeHuman, model.messages[0].Role)
	})

	t.Run("WrapsModelErrors", func(t *testing.T) {
		t.Parallel()
		model := &fakeModel{err: errors.New("quota exceeded")}
		gen := NewGenerator(model)

		_, err := gen.Generate(context.Background(), "prompt")
		require.Error(t, err)
		require.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestNewOpenAIGeneratorValidation(t *testing.T) {
	t.Parallel()
	_, err := NewOpenAIGenerator("", "gpt-4o-mini")
	require.Error(t, err)
	_, err = NewOpenAIGenerator("key", "")
	require.Error(t, err)
}
