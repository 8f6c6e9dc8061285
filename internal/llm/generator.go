// Package llm provides the text-generation collaborator boundary.
package llm

import "context"

// Generator produces text from a single prompt. Implementations are opaque
// network dependencies; timeouts and cancellation come from ctx.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
