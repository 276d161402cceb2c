// The worker process hosts the epic evaluation workflow and its activities
// on a Temporal task queue.
package main

import (
	"log/slog"
	"os"

	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/mkats/go-epicjudge/internal/config"
	"github.com/mkats/go-epicjudge/internal/worker"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("worker exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	llmClient, err := worker.InitializeLLMClient(cfg)
	if err != nil {
		return err
	}
	rubricText, err := worker.InitializeRubric(cfg)
	if err != nil {
		return err
	}
	pacer := worker.InitializePacer(cfg)

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalHostPort})
	if err != nil {
		return err
	}
	defer c.Close()

	w := sdkworker.New(c, cfg.TaskQueue, sdkworker.Options{})
	worker.RegisterAll(w, llmClient, pacer, rubricText, cfg)

	logger.Info("worker starting",
		"task_queue", cfg.TaskQueue,
		"temporal", cfg.TemporalHostPort,
		"model", cfg.Model,
		"output_dir", cfg.OutputDir)

	return w.Run(sdkworker.InterruptCh())
}
