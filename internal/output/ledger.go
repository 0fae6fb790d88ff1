/*
PURPOSE:
  Appends benchmark results to the persistent CSV ledger.
  Creates the file with a header row on first write.

REQUIREMENTS:
  User-specified:
  - One row per successful benchmark, merged with the host snapshot.
  - The file is opened, appended, and closed per result (no held handle).
  - Prompt and response text is NEVER written; literal placeholders go in
    those columns instead (privacy/size tradeoff in the ledger contract).

  Implementation-discovered:
  - Ledger consumers expect EVERY field quoted. encoding/csv only quotes
    fields that need it, so the quoting is done by hand here.
  - Records terminate with CRLF, matching the historical file format.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result, internal/model.SystemInfo

ERROR HANDLING:
  - Returns error on file creation or write failure. The caller logs it and
    drops the result; a bad disk never aborts the run.

IMPLEMENTATION RULES:
  - All nanosecond durations convert to seconds with 2 decimal places.
  - Counts as integers, rates as 2-decimal floats.
  - Timestamp is wall clock at write time, "2006-01-02 15:04:05".

USAGE:
  l := output.NewLedger("results/all_benchmarks.csv")
  err := l.Append(result, sysInfo)

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update header and row construction together when columns change.
*/

package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/daryltucker/prompt-runner/internal/model"
)

// Placeholder strings written to the ledger in place of prompt and response
// text. Downstream tooling depends on these exact literals.
const (
	PromptPlaceholder   = "prompt-placeholder"
	ResponsePlaceholder = "result-placeholder"
)

// ledgerHeader is the fixed 20-column schema.
var ledgerHeader = []string{
	"model", "category", "prompt", "response", "duration",
	"total_duration", "load_duration", "prompt_eval_count",
	"prompt_eval_duration", "prompt_eval_rate", "eval_count",
	"eval_duration", "eval_rate", "timestamp",
	"os", "os_version", "runtime_version", "cpu", "ram_total", "gpu",
}

// Ledger appends result rows to a single CSV file.
type Ledger struct {
	path string
}

// NewLedger returns a Ledger targeting path. The file is not touched until
// the first Append.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Append writes exactly one row for the given result, creating the file and
// header when it does not exist yet.
func (l *Ledger) Append(r model.Result, info model.SystemInfo) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create ledger directory %s: %w", dir, err)
		}
	}

	_, statErr := os.Stat(l.path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ledger %s: %w", l.path, err)
	}
	defer f.Close()

	if isNew {
		if _, err := f.WriteString(quoteRecord(ledgerHeader)); err != nil {
			return fmt.Errorf("failed to write ledger header: %w", err)
		}
	}

	row := []string{
		r.Model,
		r.Category,
		PromptPlaceholder,
		ResponsePlaceholder,
		fmt.Sprintf("%.2f", r.Duration.Seconds()),
		fmt.Sprintf("%.2f", float64(r.Stats.TotalDuration)/1_000_000_000),
		fmt.Sprintf("%.2f", float64(r.Stats.LoadDuration)/1_000_000_000),
		fmt.Sprintf("%d", r.Stats.PromptEvalCount),
		fmt.Sprintf("%.2f", float64(r.Stats.PromptEvalDuration)/1_000_000_000),
		fmt.Sprintf("%.2f", r.Stats.PromptEvalRate()),
		fmt.Sprintf("%d", r.Stats.EvalCount),
		fmt.Sprintf("%.2f", float64(r.Stats.EvalDuration)/1_000_000_000),
		fmt.Sprintf("%.2f", r.Stats.EvalRate()),
		time.Now().Format("2006-01-02 15:04:05"),
		info.OS,
		info.OSVersion,
		info.RuntimeVersion,
		info.CPU,
		fmt.Sprintf("%.2f", info.RAMTotalGB),
		info.GPU,
	}

	if _, err := f.WriteString(quoteRecord(row)); err != nil {
		return fmt.Errorf("failed to append ledger row: %w", err)
	}
	return nil
}

// Path returns the ledger file location.
func (l *Ledger) Path() string {
	return l.path
}

// quoteRecord renders one CSV record with every field quoted. Interior
// quotes are doubled per RFC 4180.
func quoteRecord(fields []string) string {
	quoted := make([]string, len(fields))
	for i, fld := range fields {
		quoted[i] = `"` + strings.ReplaceAll(fld, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\r\n"
}
