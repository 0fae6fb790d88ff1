/*
PURPOSE:
  Provides a structured logger constructor for Prompt Runner.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - Needs to support Info/Warn/Error levels.
  - No package-level logger state: the CLI builds one instance and hands it
    to every component explicitly.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  logger := output.NewLogger(os.Stdout)
  logger.Info("message", "key", "value")

MAINTENANCE:
  - Configurable log levels?
*/

package output

import (
	"io"
	"log/slog"
)

// NewLogger returns a text-format structured logger writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}
