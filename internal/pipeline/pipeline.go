// Package pipeline sequences a fixed, ordered list of stages over a single
// workflow state. There is no branching and no looping: each stage runs at
// most the configured number of attempts, and a stage failure stops the run
// before any later stage observes partial state.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nadavc/scribeai/internal/state"
)

// Stage is one discrete, ordered step of the pipeline. Run receives the
// merged state so far and returns a delta holding only the fields it set
// plus any log messages; the runner merges the delta back.
type Stage interface {
	Name() string
	Run(ctx context.Context, st state.State, cfg Config) (state.State, error)
}

// StageSpec binds a stage to the classification the runner applies when the
// stage fails.
type StageSpec struct {
	Stage   Stage
	Failure Kind
}

// Runner executes stages strictly in order over one isolated state per run.
// A Runner is immutable after construction and safe for concurrent Run calls.
type Runner struct {
	name   string
	stages []StageSpec
}

// New builds a runner from an ordered list of stage specs.
func New(name string, stages ...StageSpec) (*Runner, error) {
	if name == "" {
		return nil, errors.New("pipeline name is required")
	}
	if len(stages) == 0 {
		return nil, errors.New("pipeline requires at least one stage")
	}
	seen := make(map[string]struct{}, len(stages))
	for _, spec := range stages {
		if spec.Stage == nil {
			return nil, errors.New("pipeline stage must not be nil")
		}
		stageName := spec.Stage.Name()
		if stageName == "" {
			return nil, errors.New("pipeline stage name must not be empty")
		}
		if _, exists := seen[stageName]; exists {
			return nil, errors.Errorf("stage %s already exists", stageName)
		}
		seen[stageName] = struct{}{}
	}
	return &Runner{name: name, stages: stages}, nil
}

// Run executes the pipeline for one topic and returns the finished article.
// Failures come back as a classified StageError; the run's state is
// discarded either way and never leaks into other runs.
func (r *Runner) Run(ctx context.Context, topic string, opts ...Option) (string, error) {
	cfg := NewConfig(r.name, opts...)

	if strings.TrimSpace(topic) == "" {
		return "", NewStageError(KindInvalidInput, "", state.ErrEmptyTopic)
	}

	st := state.New(topic)
	logger := cfg.Logger.With("pipeline", cfg.PipelineID, "run_id", cfg.RunID)

	for _, spec := range r.stages {
		if err := ctx.Err(); err != nil {
			return "", NewStageError(spec.Failure, spec.Stage.Name(), err)
		}

		if cfg.Debug {
			logger.Debug("executing stage", "stage", spec.Stage.Name())
		}

		delta, err := r.runStage(ctx, spec.Stage, st, cfg)
		if err != nil {
			logger.Error("stage failed", "stage", spec.Stage.Name(), "error", err)
			return "", NewStageError(spec.Failure, spec.Stage.Name(), err)
		}
		st = st.Merge(delta)
	}

	if st.Article == "" {
		return "", NewStageError(KindWritingFailed, "", errors.New("pipeline completed without an article"))
	}
	return st.Article, nil
}

// runStage executes one stage with the configured timeout and retry policy.
func (r *Runner) runStage(ctx context.Context, stage Stage, st state.State, cfg Config) (state.State, error) {
	maxAttempts := 1
	if cfg.Retry != nil && cfg.Retry.MaxAttempts > 1 {
		maxAttempts = cfg.Retry.MaxAttempts
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if cfg.Debug {
				cfg.Logger.Debug("retrying stage", "stage", stage.Name(), "attempt", attempt+1)
			}
			select {
			case <-ctx.Done():
				return state.State{}, ctx.Err()
			case <-time.After(cfg.Retry.Delay):
			}
		}

		delta, err := r.attempt(ctx, stage, st, cfg)
		if err == nil {
			return delta, nil
		}
		lastErr = err

		// Bad input and caller cancellation cannot be repaired by retrying.
		if HasKind(err, KindInvalidInput) || ctx.Err() != nil {
			break
		}
	}
	return state.State{}, errors.Wrapf(lastErr, "stage %s failed", stage.Name())
}

func (r *Runner) attempt(ctx context.Context, stage Stage, st state.State, cfg Config) (state.State, error) {
	if cfg.StageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.StageTimeout)
		defer cancel()
	}
	return stage.Run(ctx, st, cfg)
}
