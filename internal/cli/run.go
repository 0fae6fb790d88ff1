/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full benchmark pipeline.

REQUIREMENTS:
  User-specified:
  - --models selects the models to benchmark (default: gemma3:4b).
  - --category restricts the run to one prompt category; absent means all.
  - Exit code 0 regardless of individual benchmark failures.

  Implementation-discovered:
  - Need to load config first, then apply flag overrides.
  - --debug dumps the effective config before running.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error only if config loading fails; benchmark failures are
    logged inside the engine and never propagate here.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  prompt-runner run --models gemma3:4b,llama3.2 --category coding

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"context"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/daryltucker/prompt-runner/internal/config"
	"github.com/daryltucker/prompt-runner/internal/engine"
	"github.com/daryltucker/prompt-runner/internal/output"
)

var (
	modelsOverride   []string
	categoryOverride string
	debugConfig      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark pipeline",
	Long: `Benchmarks each selected model against every prompt in the selected
categories, one request at a time:
1. Probe host hardware (CPU, RAM, GPU) once.
2. List the endpoint's models (informational).
3. Load the category prompt files.
4. For each model x category x prompt: send one non-streaming chat request,
   derive token throughput, and append a row to the CSV ledger.

Failed requests are logged and skipped; the process always exits 0 once all
iterations have been attempted.`,
	Example: `  # Run with defaults (all categories, gemma3:4b)
  prompt-runner run

  # Benchmark two models on the coding prompts only
  prompt-runner run --models gemma3:4b,llama3.2 --category coding`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if len(modelsOverride) > 0 {
			cfg.Models = modelsOverride
		}
		if categoryOverride != "" {
			cfg.Category = categoryOverride
		}

		if debugConfig {
			pp.Println(cfg)
		}

		logger := output.NewLogger(os.Stdout)

		// 3. Execution
		return engine.Run(context.Background(), cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVar(&modelsOverride, "models", nil, "Comma-separated list of models to benchmark")
	runCmd.Flags().StringVar(&categoryOverride, "category", "", "Restrict the run to one prompt category (coding, general_text, summarization)")
	runCmd.Flags().BoolVar(&debugConfig, "debug", false, "Dump the effective configuration before running")
}
