package output

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLWriter_AppendsOneLinePerWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.jsonl")

	w, err := NewJSONLWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(sampleResult(), sampleInfo()))
	require.NoError(t, w.Write(sampleResult(), sampleInfo()))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec jsonlRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		assert.Equal(t, "gemma3:4b", rec.Model)
		// Unlike the ledger, the mirror keeps the real text.
		assert.Equal(t, "Write a linked list in Go.", rec.Prompt)
		assert.Equal(t, "Linux", rec.System.OS)
		assert.False(t, rec.Timestamp.IsZero())
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 2, lines)
}
