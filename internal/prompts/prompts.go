/*
PURPOSE:
  Loads category prompt sets from JSON files.
  One file per category; each maps the category name to a list of prompts.

REQUIREMENTS:
  User-specified:
  - Fixed categories: coding, general_text, summarization.
  - An optional single-category restriction.

  Implementation-discovered:
  - Missing or malformed files are logged and skipped, never fatal.
  - A file that parses but lacks its category key yields an empty set, which
    still appears in the returned map (zero iterations downstream).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Leaf package, no internal dependencies.

ERROR HANDLING:
  - Per-file errors logged at Error level; the category is skipped.

USAGE:
  sets := prompts.Load("benchmarks", "", logger)

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update Categories when adding a new prompt file.
*/

package prompts

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Categories are the prompt sets loaded when no restriction is given.
var Categories = []string{"coding", "general_text", "summarization"}

// Load reads prompt files from dir. When category is non-empty only that
// category's file is read. The returned map holds one entry per file that
// loaded successfully.
func Load(dir, category string, logger *slog.Logger) map[string][]string {
	cats := Categories
	if category != "" {
		cats = []string{category}
	}

	sets := make(map[string][]string)
	for _, cat := range cats {
		path := filepath.Join(dir, cat+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Prompts file not found", "path", path, "error", err)
			continue
		}

		var parsed map[string][]string
		if err := json.Unmarshal(data, &parsed); err != nil {
			logger.Error("Failed to decode prompts file", "path", path, "error", err)
			continue
		}

		sets[cat] = parsed[cat]
		logger.Info("Loaded prompts", "path", path, "count", len(parsed[cat]))
	}
	return sets
}
