// Package research implements the first pipeline stage: one web query for
// the run's topic, normalized into a single bounded research text.
package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/nadavc/scribeai/internal/pipeline"
	"github.com/nadavc/scribeai/internal/search"
	"github.com/nadavc/scribeai/internal/state"
)

// maxResearchChars bounds the normalized text so the downstream prompt
// stays a reasonable size.
const maxResearchChars = 4000

const snippetSeparator = "\n---\n"

type Stage struct {
	client search.Client
}

func NewStage(client search.Client) (*Stage, error) {
	if client == nil {
		return nil, errors.New("search client is required")
	}
	return &Stage{client: client}, nil
}

func (s *Stage) Name() string { return "research" }

// Run queries the search collaborator with the topic verbatim and returns a
// delta carrying the normalized research text. Collaborator failures come
// back as search_unavailable; an empty normalization as no_results_found.
func (s *Stage) Run(ctx context.Context, st state.State, cfg pipeline.Config) (state.State, error) {
	results, err := s.client.Query(ctx, st.Topic)
	if err != nil {
		return state.State{}, pipeline.NewStageError(pipeline.KindSearchUnavailable, s.Name(), err)
	}

	data, kept := Normalize(results)
	if data == "" {
		return state.State{}, pipeline.NewStageError(
			pipeline.KindNoResultsFound, s.Name(),
			errors.Errorf("no usable snippets in %d results for topic %q", len(results), st.Topic),
		)
	}

	if cfg.Debug {
		cfg.Logger.Debug("research complete", "run_id", cfg.RunID, "snippets", kept, "chars", len(data))
	}

	return state.State{
		ResearchData: data,
		Messages: []llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeAI,
				fmt.Sprintf("Completed search for %q: kept %d of %d snippets.", st.Topic, kept, len(results))),
		},
	}, nil
}

// Normalize concatenates search findings into one bounded text, dropping
// empty and duplicate snippets. Returns the text and the number of snippets
// kept.
func Normalize(results []search.Result) (string, int) {
	seen := make(map[string]struct{}, len(results))
	var b strings.Builder
	kept := 0

	for _, r := range results {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		key := strings.ToLower(content)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		block := fmt.Sprintf("Title: %s\nURL: %s\nContent: %s", strings.TrimSpace(r.Title), strings.TrimSpace(r.URL), content)
		if b.Len() > 0 {
			block = snippetSeparator + block
		}

		remaining := maxResearchChars - b.Len()
		if remaining <= 0 {
			break
		}
		if len(block) > remaining {
			b.WriteString(block[:remaining])
			kept++
			break
		}
		b.WriteString(block)
		kept++
	}

	return strings.TrimSpace(b.String()), kept
}
