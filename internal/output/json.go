/*
PURPOSE:
  Writes benchmark results to a JSON Lines file (NDJSON).
  Optional machine-readable mirror of the CSV ledger, keeping the full
  prompt/response text that the ledger deliberately omits.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing (opt-in via jsonl_file config).

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large array
    (append-friendly).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure; the caller logs and
    continues.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONLWriter("results/all_benchmarks.jsonl")
  w.Write(result, sysInfo)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/daryltucker/prompt-runner/internal/model"
)

// JSONLWriter handles writing results to a JSON Lines file.
type JSONLWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// jsonlRecord is one mirrored result line.
type jsonlRecord struct {
	model.Result
	System    model.SystemInfo `json:"system"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewJSONLWriter creates a new JSONLWriter appending to path.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &JSONLWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single result as a JSON line.
func (jw *JSONLWriter) Write(r model.Result, info model.SystemInfo) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(jsonlRecord{
		Result:    r,
		System:    info,
		Timestamp: time.Now(),
	})
}

// Close closes the underlying file.
func (jw *JSONLWriter) Close() error {
	return jw.file.Close()
}
