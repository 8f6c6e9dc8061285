package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a run failure. The set is finite so callers can switch on
// it without inspecting raw collaborator errors.
type Kind string

const (
	// KindInvalidInput is returned for an empty or whitespace-only topic.
	// It is surfaced before any collaborator call and never retried.
	KindInvalidInput Kind = "invalid_input"

	// KindSearchUnavailable means the search collaborator errored or timed out.
	KindSearchUnavailable Kind = "search_unavailable"

	// KindNoResultsFound means the search succeeded but normalization
	// yielded no usable text.
	KindNoResultsFound Kind = "no_results_found"

	// KindGenerationUnavailable means the generation collaborator errored,
	// timed out, or produced empty text.
	KindGenerationUnavailable Kind = "generation_unavailable"

	// KindResearchFailed wraps any research-stage failure at the run boundary.
	KindResearchFailed Kind = "research_failed"

	// KindWritingFailed wraps any writing-stage failure at the run boundary.
	KindWritingFailed Kind = "writing_failed"
)

// StageError is the classified error type produced by stages and the runner.
type StageError struct {
	// Kind is the classification of the failure
	Kind Kind
	// Stage is the name of the stage where the failure occurred (empty for
	// failures before any stage ran)
	Stage string
	// Err is the underlying cause, if any
	Err error
}

func (e *StageError) Error() string {
	if e.Stage == "" {
		if e.Err == nil {
			return fmt.Sprintf("pipeline error: %s", e.Kind)
		}
		return fmt.Sprintf("pipeline error: %s: %v", e.Kind, e.Err)
	}
	if e.Err == nil {
		return fmt.Sprintf("pipeline error: %s: stage '%s'", e.Kind, e.Stage)
	}
	return fmt.Sprintf("pipeline error: %s: stage '%s': %v", e.Kind, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a classified StageError wrapping err.
func NewStageError(kind Kind, stage string, err error) error {
	return &StageError{Kind: kind, Stage: stage, Err: err}
}

// KindOf returns the outermost classification of err, or false if err
// carries no StageError.
func KindOf(err error) (Kind, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return "", false
}

// HasKind reports whether any error in the chain carries the given kind.
// Run failures are wrapped (research_failed wrapping search_unavailable, for
// example), so callers use this to test inner classifications.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		if se, ok := err.(*StageError); ok && se.Kind == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
