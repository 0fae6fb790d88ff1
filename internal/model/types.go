/*
PURPOSE:
  Defines the core data structures used throughout Prompt Runner.
  These models represent benchmark results, server-reported token statistics,
  and the host hardware snapshot attached to every ledger row.

REQUIREMENTS:
  User-specified:
  - Record wall-clock duration, token counts, and server-side durations.
  - Track model name and prompt category per result.
  - Capture host metadata once per run.

  Implementation-discovered:
  - Need JSON tags for the JSONL mirror output.
  - Derived throughput rates must be computed identically by the engine and
    the ledger writer, so they live as methods on ChatStats.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output, internal/sysinfo
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Server durations stay as raw nanosecond int64, matching the wire format.
  - Use time.Duration for client-side wall time.

USAGE:
  res := model.Result{...}
  rate := res.Stats.EvalRate()

RELATED FILES:
  - internal/output/ledger.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"time"
)

// ChatStats holds the six raw counters and durations reported by the server
// in the final response record. All durations are nanoseconds, exactly as
// they arrive on the wire. Missing fields decode to zero.
type ChatStats struct {
	TotalDuration      int64 `json:"total_duration"`
	LoadDuration       int64 `json:"load_duration"`
	PromptEvalCount    int   `json:"prompt_eval_count"`
	PromptEvalDuration int64 `json:"prompt_eval_duration"`
	EvalCount          int   `json:"eval_count"`
	EvalDuration       int64 `json:"eval_duration"`
}

// PromptEvalRate returns the prompt processing throughput in tokens per
// second. Zero when either the count or the duration is not positive, so
// division by zero cannot occur.
func (s ChatStats) PromptEvalRate() float64 {
	if s.PromptEvalCount > 0 && s.PromptEvalDuration > 0 {
		return float64(s.PromptEvalCount) / (float64(s.PromptEvalDuration) / 1_000_000_000)
	}
	return 0
}

// EvalRate returns the generation throughput in tokens per second, with the
// same positivity guard as PromptEvalRate.
func (s ChatStats) EvalRate() float64 {
	if s.EvalCount > 0 && s.EvalDuration > 0 {
		return float64(s.EvalCount) / (float64(s.EvalDuration) / 1_000_000_000)
	}
	return 0
}

// ChatResult is the successful outcome of a single chat benchmark call.
// Failures are reported as errors by the engine, never as a zero ChatResult.
type ChatResult struct {
	Response string        `json:"response"`
	Duration time.Duration `json:"duration"` // client wall clock, not server-reported
	Stats    ChatStats     `json:"stats"`
}

// Result is one benchmark iteration, ready for recording.
type Result struct {
	Model    string        `json:"model"`
	Category string        `json:"category"`
	Prompt   string        `json:"prompt"`
	Response string        `json:"response"`
	Duration time.Duration `json:"duration"`
	Stats    ChatStats     `json:"stats"`
}

// SystemInfo is the host hardware/software snapshot. It is collected once
// per process run and attached identically to every ledger row.
type SystemInfo struct {
	OS             string  `json:"os"`
	OSVersion      string  `json:"os_version"`
	RuntimeVersion string  `json:"runtime_version"`
	CPU            string  `json:"cpu"`
	RAMTotalGB     float64 `json:"ram_total_gb"`
	GPU            string  `json:"gpu"`
}
