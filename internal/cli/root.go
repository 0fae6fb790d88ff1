/*
PURPOSE:
  Defines the root Cobra command for the Prompt Runner CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/prompt-runner/main.go
  - Calls: Child commands (run, list-models)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/prompt-runner/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "prompt-runner",
		Short: "Prompt benchmarking tool for local Ollama endpoints",
		Long:  `Benchmarks categorized prompt sets against a local Ollama endpoint and appends latency and token-throughput results to a CSV ledger. Use 'run --help' for benchmark options.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./runner.yaml)")
}
