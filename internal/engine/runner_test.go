package engine

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/prompt-runner/internal/config"
	"github.com/daryltucker/prompt-runner/internal/output"
)

// writePromptFile writes a category prompt file into dir.
func writePromptFile(t *testing.T, dir, category, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, category+".json"), []byte(content), 0o644))
}

func testRunConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	promptsDir := t.TempDir()
	writePromptFile(t, promptsDir, "coding", `{"coding": ["write a loop", "write a map"]}`)

	cfg := config.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Models = []string{"gemma3:4b"}
	cfg.Category = "coding"
	cfg.PromptsDir = promptsDir
	cfg.LedgerFile = filepath.Join(t.TempDir(), "results", "all_benchmarks.csv")
	return cfg
}

func readLedger(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func okChatHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/tags":
		io.WriteString(w, `{"models":[{"name":"gemma3:4b"}]}`)
	case "/api/chat":
		io.WriteString(w, finalRecord+"\n")
	default:
		http.NotFound(w, r)
	}
}

func TestRun_OneRowPerSuccessfulPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(okChatHandler))
	defer srv.Close()

	cfg := testRunConfig(t, srv.URL)
	require.NoError(t, Run(context.Background(), cfg, output.NewLogger(io.Discard)))

	records := readLedger(t, cfg.LedgerFile)
	// Header plus one row per prompt in the category.
	require.Len(t, records, 3)
	for _, row := range records[1:] {
		assert.Equal(t, "gemma3:4b", row[0])
		assert.Equal(t, "coding", row[1])
		assert.Equal(t, output.PromptPlaceholder, row[2])
		assert.Equal(t, output.ResponsePlaceholder, row[3])
	}
	// Independent timestamps per row, possibly equal at second granularity,
	// but both present.
	assert.NotEmpty(t, records[1][13])
	assert.NotEmpty(t, records[2][13])
}

func TestRun_FailedBenchmarksProduceNoRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/chat" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		okChatHandler(w, r)
	}))
	defer srv.Close()

	cfg := testRunConfig(t, srv.URL)
	// Failures are logged and skipped; the run still succeeds.
	require.NoError(t, Run(context.Background(), cfg, output.NewLogger(io.Discard)))

	_, err := os.Stat(cfg.LedgerFile)
	assert.True(t, os.IsNotExist(err), "no rows recorded means the ledger is never created")
}

func TestRun_EmptyResponseIsDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/chat" {
			io.WriteString(w, `{"message":{"role":"assistant","content":""},"done":true}`+"\n")
			return
		}
		okChatHandler(w, r)
	}))
	defer srv.Close()

	cfg := testRunConfig(t, srv.URL)
	require.NoError(t, Run(context.Background(), cfg, output.NewLogger(io.Discard)))

	_, err := os.Stat(cfg.LedgerFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_UnreachableEndpointStillExitsClean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(okChatHandler))
	srv.Close() // refuse all connections

	cfg := testRunConfig(t, srv.URL)
	require.NoError(t, Run(context.Background(), cfg, output.NewLogger(io.Discard)))
}

func TestRun_SequentialCallsAppendIndependently(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(okChatHandler))
	defer srv.Close()

	cfg := testRunConfig(t, srv.URL)
	logger := output.NewLogger(io.Discard)

	require.NoError(t, Run(context.Background(), cfg, logger))
	first := len(readLedger(t, cfg.LedgerFile))

	// A second process run appends to the same ledger without rewriting
	// the header.
	require.NoError(t, Run(context.Background(), cfg, logger))
	records := readLedger(t, cfg.LedgerFile)

	assert.Equal(t, first+2, len(records))
	assert.Equal(t, "model", records[0][0])
	assert.NotEqual(t, "model", records[1][0])
}

func TestRun_WritesJSONLMirrorWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(okChatHandler))
	defer srv.Close()

	cfg := testRunConfig(t, srv.URL)
	cfg.JSONLFile = filepath.Join(t.TempDir(), "mirror.jsonl")
	require.NoError(t, Run(context.Background(), cfg, output.NewLogger(io.Discard)))

	data, err := os.ReadFile(cfg.JSONLFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"model":"gemma3:4b"`)
	assert.Contains(t, string(data), "write a loop")
}
