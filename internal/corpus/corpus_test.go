package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, `[
		{"title": "A", "summary": "first", "youtube": "https://youtu.be/abc"},
		{"title": "B", "summary": "second"}
	]`)

	projects, err := Load(path)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "A", projects[0].Title)
	assert.True(t, projects[0].HasVideo())
	assert.False(t, projects[1].HasVideo())
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	path := writeCorpus(t, `[
		{"title": "", "summary": "no title"},
		{"title": "NoSummary", "summary": ""},
		{"title": "OK", "summary": "fine"}
	]`)

	projects, err := Load(path)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "OK", projects[0].Title)
}

func TestLoadEmptyArray(t *testing.T) {
	projects, err := Load(writeCorpus(t, `[]`))
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load(writeCorpus(t, `{not an array`))
	assert.Error(t, err)
}
