package prompts

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/prompt-runner/internal/output"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_AllCategories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.json", `{"coding": ["a", "b"]}`)
	writeFile(t, dir, "general_text.json", `{"general_text": ["c"]}`)
	writeFile(t, dir, "summarization.json", `{"summarization": []}`)

	sets := Load(dir, "", output.NewLogger(io.Discard))

	require.Len(t, sets, 3)
	assert.Equal(t, []string{"a", "b"}, sets["coding"])
	assert.Equal(t, []string{"c"}, sets["general_text"])
	assert.Empty(t, sets["summarization"])
}

func TestLoad_SingleCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.json", `{"coding": ["a"]}`)
	writeFile(t, dir, "general_text.json", `{"general_text": ["c"]}`)

	sets := Load(dir, "coding", output.NewLogger(io.Discard))

	require.Len(t, sets, 1)
	assert.Equal(t, []string{"a"}, sets["coding"])
}

func TestLoad_MissingFileSkipsCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.json", `{"coding": ["a"]}`)

	sets := Load(dir, "", output.NewLogger(io.Discard))

	require.Len(t, sets, 1)
	_, ok := sets["general_text"]
	assert.False(t, ok)
}

func TestLoad_MalformedJSONSkipsCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.json", `{not json`)

	sets := Load(dir, "coding", output.NewLogger(io.Discard))
	assert.Empty(t, sets)
}

func TestLoad_FileWithoutCategoryKeyYieldsEmptySet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "coding.json", `{"other_key": ["x"]}`)

	sets := Load(dir, "coding", output.NewLogger(io.Discard))

	// The category still appears, with zero prompts to iterate.
	require.Len(t, sets, 1)
	assert.Empty(t, sets["coding"])
}
