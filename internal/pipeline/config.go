package pipeline

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultStageTimeout = 60 * time.Second

// RetryPolicy defines how the runner re-attempts a failed stage.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration // delay between attempts
}

// Config carries per-run execution settings. Every run gets its own Config
// with a fresh RunID; nothing in it is shared mutable data.
type Config struct {
	PipelineID   string
	RunID        string
	StageTimeout time.Duration
	Retry        *RetryPolicy
	Debug        bool
	Logger       *slog.Logger
}

func NewConfig(pipelineID string, opt ...Option) Config {
	cfg := Config{
		PipelineID:   pipelineID,
		RunID:        uuid.New().String(),
		StageTimeout: defaultStageTimeout,
		Logger:       slog.Default(),
	}
	for _, o := range opt {
		o(&cfg)
	}
	return cfg
}

type Option func(*Config)

// WithStageTimeout bounds each stage's collaborator call. Zero disables the
// per-stage deadline (the caller's context still applies).
func WithStageTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.StageTimeout = d
	}
}

// WithRetryPolicy enables stage re-attempts on failure. Invalid input is
// never retried.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Config) {
		c.Retry = &policy
	}
}

// WithDebug enables stage-level execution tracing.
func WithDebug() Option {
	return func(c *Config) {
		c.Debug = true
	}
}

// WithLogger sets the logger for this run.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(c *Config) {
		c.RunID = id
	}
}
