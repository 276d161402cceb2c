// epicjudge submits epic documents for rubric evaluation, one workflow per
// epic, strictly sequentially.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"

	"github.com/mkats/go-epicjudge/internal/config"
	"github.com/mkats/go-epicjudge/internal/domain"
	"github.com/mkats/go-epicjudge/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:     "epicjudge",
	Short:   "Rubric-based evaluation of epic planning documents",
	Long:    `epicjudge extracts the five standard elements from each epic document, scores them against the quality rubric, and writes a timestamped JSON report per epic.`,
	Version: "0.1.0",
}

var runCmd = &cobra.Command{
	Use:   "run <epic-file>...",
	Short: "Evaluate one or more epic text files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEpics,
}

func init() {
	runCmd.Flags().String("address", "", "Temporal server address (defaults to TEMPORAL_ADDRESS or localhost:7233)")
	runCmd.Flags().String("task-queue", "", "task queue the worker listens on")
	runCmd.Flags().Duration("epic-delay", 0, "pause between epics (quota protection)")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEpics(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("address"); v != "" {
		cfg.TemporalHostPort = v
	}
	if v, _ := cmd.Flags().GetString("task-queue"); v != "" {
		cfg.TaskQueue = v
	}
	if v, _ := cmd.Flags().GetDuration("epic-delay"); v > 0 {
		cfg.EpicDelay = v
	}

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalHostPort})
	if err != nil {
		return fmt.Errorf("connect to temporal: %w", err)
	}
	defer c.Close()

	ctx := cmd.Context()

	// One epic at a time: each workflow runs to completion before the next
	// starts, with a quota-protecting pause in between.
	for i, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read epic %s: %w", path, err)
		}

		index := i + 1
		fmt.Fprintf(cmd.OutOrStdout(), "Evaluating epic %d (%s)\n", index, path)

		report, err := evaluateEpic(ctx, c, cfg, string(text), index)
		if err != nil {
			return fmt.Errorf("evaluate epic %d: %w", index, err)
		}

		if err := printReport(cmd, report); err != nil {
			return err
		}

		if index < len(args) {
			select {
			case <-time.After(cfg.EpicDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

func evaluateEpic(ctx context.Context, c client.Client, cfg *config.Config, text string, index int) (*domain.Report, error) {
	opts := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("epic-eval-%d-%s", index, uuid.NewString()[:8]),
		TaskQueue: cfg.TaskQueue,
	}

	we, err := c.ExecuteWorkflow(ctx, opts, workflow.EpicEvaluationWorkflow, domain.EvaluateEpicInput{
		RawText:   text,
		EpicIndex: index,
	})
	if err != nil {
		return nil, err
	}

	var report domain.Report
	if err := we.Get(ctx, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func printReport(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report.Evaluations, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "FINAL REPORT for epic %d:\n%s\n", report.EpicIndex, data)
	if report.Persisted {
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", report.ArtifactPath)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report was not persisted (path %s); output above is authoritative\n", report.ArtifactPath)
	}
	return nil
}
