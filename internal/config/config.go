// Package config holds process configuration for the worker and starter.
// Values come from environment variables layered over defaults; credentials
// are read once at startup and injected, never consulted as ambient globals.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Defaults for the generation client, pacing discipline, and artifact output.
const (
	DefaultModel     = "gpt-4o-mini"
	DefaultTaskQueue = "epic-evaluation"
	DefaultHostPort  = "localhost:7233"
	DefaultOutputDir = "evaluation_results"
	DefaultCallDelay = time.Second
	DefaultEpicDelay = 4 * time.Second
)

// Config is the process-wide configuration shared by both entry points.
type Config struct {
	// Generation service client.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string

	// Temporal connection.
	TemporalHostPort string
	TaskQueue        string

	// Report artifacts.
	OutputDir string

	// Optional YAML rubric override; empty selects the built-in rubric.
	RubricPath string

	// Pacing: delay after every generation call, and between epics.
	CallDelay time.Duration
	EpicDelay time.Duration
}

// Default returns the configuration defaults without environment overlay.
func Default() *Config {
	return &Config{
		Model:            DefaultModel,
		TemporalHostPort: DefaultHostPort,
		TaskQueue:        DefaultTaskQueue,
		OutputDir:        DefaultOutputDir,
		CallDelay:        DefaultCallDelay,
		EpicDelay:        DefaultEpicDelay,
	}
}

// Load builds the configuration from defaults overlaid with environment
// variables. Durations use Go duration syntax (e.g. "1500ms", "2s").
func Load() (*Config, error) {
	cfg := Default()

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	overlay(&cfg.OpenAIBaseURL, "OPENAI_BASE_URL")
	overlay(&cfg.Model, "EPICJUDGE_MODEL")
	overlay(&cfg.TemporalHostPort, "TEMPORAL_ADDRESS")
	overlay(&cfg.TaskQueue, "EPICJUDGE_TASK_QUEUE")
	overlay(&cfg.OutputDir, "EPICJUDGE_OUTPUT_DIR")
	overlay(&cfg.RubricPath, "EPICJUDGE_RUBRIC_FILE")

	if err := overlayDuration(&cfg.CallDelay, "EPICJUDGE_CALL_DELAY"); err != nil {
		return nil, err
	}
	if err := overlayDuration(&cfg.EpicDelay, "EPICJUDGE_EPIC_DELAY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields the worker cannot run without.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.Model == "" {
		return errors.New("model is required")
	}
	if c.TaskQueue == "" {
		return errors.New("task queue is required")
	}
	return nil
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overlayDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = d
	return nil
}
