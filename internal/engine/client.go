/*
PURPOSE:
  Core engine for interacting with the Ollama HTTP API.
  Handles model discovery and the single-prompt chat benchmark call.

REQUIREMENTS:
  User-specified:
  - List available models (/api/tags).
  - Non-streaming chat benchmark (/api/chat) with client-side wall timing.
  - No retries, no timeout override: the call relies on the HTTP client's
    own defaults.

  Implementation-discovered:
  - Even with stream=false the endpoint can emit newline-delimited JSON
    records. Only the LAST line is the authoritative final record. This is a
    deliberate compatibility accommodation; do not merge or concatenate the
    lines.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go, internal/cli
  - Uses: internal/config, internal/model

ERROR HANDLING:
  - Network errors, non-200 statuses, and JSON parse failures all surface as
    explicit error returns. The runner logs them and skips the iteration.

IMPLEMENTATION RULES:
  - Use net/http.
  - Parse only the last non-empty response line.

USAGE:
  c := engine.NewClient(cfg, logger)
  names, err := c.ListModels(ctx)
  res, err := c.Chat(ctx, "gemma3:4b", "Why is the sky blue?")

RELATED FILES:
  - internal/config/config.go
  - internal/model/types.go

MAINTENANCE:
  - Update for new Ollama API features.
*/

package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/daryltucker/prompt-runner/internal/config"
	"github.com/daryltucker/prompt-runner/internal/model"
)

// Client handles Ollama interactions.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *slog.Logger
}

// NewClient creates a new Client against the configured endpoint.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: cfg.BaseURL,
		// Defaults on purpose: the benchmark contract is "one blocking call,
		// no retry, no timeout override".
		HTTP: &http.Client{},
		Log:  logger,
	}
}

// chatMessage is one turn in the request payload.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the /api/chat request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatRecord is the final response record. Fields absent from the wire
// decode to their zero values.
type chatRecord struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Done               bool  `json:"done"`
	TotalDuration      int64 `json:"total_duration"` // ns
	LoadDuration       int64 `json:"load_duration"`  // ns
	PromptEvalCount    int   `json:"prompt_eval_count"`
	PromptEvalDuration int64 `json:"prompt_eval_duration"` // ns
	EvalCount          int   `json:"eval_count"`
	EvalDuration       int64 `json:"eval_duration"` // ns
}

// ListModels returns the model names available on the endpoint.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var payload struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	var names []string
	for _, m := range payload.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Chat sends one non-streaming chat completion for (model, prompt) and
// returns the response text, client wall-clock duration, and the six raw
// server counters. Any failure returns a nil result and an error.
func (c *Client) Chat(ctx context.Context, modelName, prompt string) (*model.ChatResult, error) {
	payload := chatRequest{
		Model:    modelName,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	}
	reqBody, _ := json.Marshal(payload)

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat returned non-200 status: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// The body can arrive as a stream of JSON records, one per line, even
	// though streaming is disabled. The last line carries the final message
	// and the server-side stats; earlier lines are intentionally ignored.
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	last := lines[len(lines)-1]

	var rec chatRecord
	if err := json.Unmarshal([]byte(last), &rec); err != nil {
		return nil, fmt.Errorf("failed to parse final response record: %w", err)
	}

	elapsed := time.Since(start)

	return &model.ChatResult{
		Response: rec.Message.Content,
		Duration: elapsed,
		Stats: model.ChatStats{
			TotalDuration:      rec.TotalDuration,
			LoadDuration:       rec.LoadDuration,
			PromptEvalCount:    rec.PromptEvalCount,
			PromptEvalDuration: rec.PromptEvalDuration,
			EvalCount:          rec.EvalCount,
			EvalDuration:       rec.EvalDuration,
		},
	}, nil
}
