/*
PURPOSE:
  High-level runner that orchestrates the benchmarking process.
  Loops through models -> categories -> prompts and records each result.

REQUIREMENTS:
  User-specified:
  - Fully sequential: one request in flight, one ledger append at a time.
  - Failed or empty responses produce no ledger row and never abort the run.
  - The process completes all iterations and exits successfully regardless
    of individual benchmark failures.

  Implementation-discovered:
  - Host snapshot captured once and attached to every row.
  - Model listing is informational only; --models is never validated
    against it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine/client.go, internal/sysinfo, internal/prompts,
    internal/output

ERROR HANDLING:
  - Logs errors but continues (resilience).

IMPLEMENTATION RULES:
  - Iterate models.
  - For each model: iterate categories in sorted order, then prompts.
  - Record immediately after each successful benchmark.

USAGE:
  engine.Run(ctx, cfg, logger)

RELATED FILES:
  - internal/engine/client.go

MAINTENANCE:
  - Update iteration logic if parallelism is ever introduced (it should
    not be; sequential execution is part of the measurement contract).
*/

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/daryltucker/prompt-runner/internal/config"
	"github.com/daryltucker/prompt-runner/internal/model"
	"github.com/daryltucker/prompt-runner/internal/output"
	"github.com/daryltucker/prompt-runner/internal/prompts"
	"github.com/daryltucker/prompt-runner/internal/sysinfo"
)

// Run executes the full benchmark pipeline. It always returns nil once all
// iterations have been attempted; per-iteration failures are logged only.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Starting LLM benchmarking")

	client := NewClient(cfg, logger)

	// 1. Capture the host snapshot once; it rides along on every row.
	info := sysinfo.Collect(ctx, logger)

	// 2. List models. Informational only.
	if names, err := client.ListModels(ctx); err != nil {
		logger.Error("Failed to list models", "error", err)
	} else {
		logger.Info("Successfully retrieved models", "count", len(names))
	}

	// 3. Load prompt sets.
	sets := prompts.Load(cfg.PromptsDir, cfg.Category, logger)

	// Sorted category order keeps runs reproducible.
	categories := make([]string, 0, len(sets))
	for cat := range sets {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	ledger := output.NewLedger(cfg.LedgerFile)

	var jsonl *output.JSONLWriter
	if cfg.JSONLFile != "" {
		w, err := output.NewJSONLWriter(cfg.JSONLFile)
		if err != nil {
			logger.Error("Failed to open JSONL mirror; continuing without it", "path", cfg.JSONLFile, "error", err)
		} else {
			jsonl = w
			defer jsonl.Close()
		}
	}

	logger.Info("Benchmarking models", "models", cfg.Models)

	// 4. Run benchmarks for each model and prompt.
	tally := make(map[[2]string]*output.SummaryRow)
	var order [][2]string

	for _, modelName := range cfg.Models {
		for _, category := range categories {
			for _, prompt := range sets[category] {
				logger.Info("Running benchmark", "model", modelName, "category", category)

				res, err := client.Chat(ctx, modelName, prompt)
				if err != nil {
					logger.Error("Benchmark failed", "model", modelName, "category", category, "error", err)
					continue
				}
				// An empty response carries nothing worth recording.
				if res.Response == "" {
					logger.Warn("Empty response; skipping record", "model", modelName, "category", category)
					continue
				}

				logger.Info("Benchmark complete",
					"model", modelName,
					"duration", fmt.Sprintf("%.2fs", res.Duration.Seconds()),
					"total", output.FormatDuration(res.Stats.TotalDuration),
					"load", output.FormatDuration(res.Stats.LoadDuration),
					"prompt_eval_rate", fmt.Sprintf("%.2f tokens/s", res.Stats.PromptEvalRate()),
					"eval_rate", fmt.Sprintf("%.2f tokens/s", res.Stats.EvalRate()),
				)

				r := model.Result{
					Model:    modelName,
					Category: category,
					Prompt:   prompt,
					Response: res.Response,
					Duration: res.Duration,
					Stats:    res.Stats,
				}

				if err := ledger.Append(r, info); err != nil {
					logger.Error("Failed to append result to ledger", "path", ledger.Path(), "error", err)
				} else {
					logger.Info("Appended result", "path", ledger.Path())
				}

				if jsonl != nil {
					if err := jsonl.Write(r, info); err != nil {
						logger.Error("Failed to write JSONL mirror line", "error", err)
					}
				}

				key := [2]string{modelName, category}
				row, ok := tally[key]
				if !ok {
					row = &output.SummaryRow{Model: modelName, Category: category}
					tally[key] = row
					order = append(order, key)
				}
				row.Runs++
				row.AvgDuration += res.Duration.Seconds()
				row.AvgEvalRate += res.Stats.EvalRate()
			}
		}
	}

	rows := make([]output.SummaryRow, 0, len(order))
	for _, key := range order {
		row := *tally[key]
		row.AvgDuration /= float64(row.Runs)
		row.AvgEvalRate /= float64(row.Runs)
		rows = append(rows, row)
	}
	fmt.Print(output.RenderSummary(rows))

	logger.Info("LLM benchmarking completed")
	return nil
}
