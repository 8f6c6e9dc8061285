// Package config loads process-wide settings once at startup. Credentials
// are read here and injected into collaborator constructors; no other
// package touches the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultModel      = "gpt-4o-mini"
	defaultListenAddr = ":8080"
)

type Config struct {
	TavilyAPIKey string
	OpenAIAPIKey string
	OpenAIModel  string
	ListenAddr   string
}

// Load reads configuration from the environment, first merging an optional
// .env file. Both collaborator credentials are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TavilyAPIKey: os.Getenv("TAVILY_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
		ListenAddr:   os.Getenv("LISTEN_ADDR"),
	}
	if cfg.TavilyAPIKey == "" {
		return nil, errors.New("TAVILY_API_KEY environment variable is not set")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = defaultModel
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	return cfg, nil
}
