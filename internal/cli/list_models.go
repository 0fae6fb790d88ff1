/*
PURPOSE:
  Defines the 'list-models' subcommand.
  Helps debug connectivity and model discovery.

REQUIREMENTS:
  User-specified:
  - List available models on the configured endpoint.

  Implementation-discovered:
  - Useful validation step before a full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Client.ListModels()

ERROR HANDLING:
  - Prints error if the endpoint is unreachable.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  prompt-runner list-models

RELATED FILES:
  - internal/engine/client.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/prompt-runner/internal/config"
	"github.com/daryltucker/prompt-runner/internal/engine"
	"github.com/daryltucker/prompt-runner/internal/output"
)

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List available models on the endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		logger := output.NewLogger(os.Stdout)
		c := engine.NewClient(cfg, logger)

		fmt.Printf("Querying %s...\n", cfg.BaseURL)
		names, err := c.ListModels(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		for _, m := range names {
			fmt.Printf("- %s\n", m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listModelsCmd)
}
