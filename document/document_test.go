package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTextFile(t *testing.T) {
	path := writeFile(t, "notes.txt", "hello world")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", p.Main)
	assert.Contains(t, p.Extra, "plain text")
}

func TestLoadTextFileTruncates(t *testing.T) {
	path := writeFile(t, "big.txt", strings.Repeat("a", 10000))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, p.Main, "[text truncated]")
	assert.Less(t, len(p.Main), 10000)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "data.csv", "name,score\nalpha,10\nbeta,20\ngamma,30\n")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, p.Main, "Table size: 3 rows x 2 columns")
	assert.Contains(t, p.Main, "name | score")
	assert.Contains(t, p.Extra, "score: count=3 mean=20.0000")
	assert.Contains(t, p.Extra, "min=10.0000 max=30.0000")
}

func TestLoadCSVNoNumericColumns(t *testing.T) {
	path := writeFile(t, "words.csv", "a,b\nx,y\n")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, p.Extra, "No numeric columns found.")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "doc.pdf", "%PDF")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document extension")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestFirstQuestionWrapsContext(t *testing.T) {
	p := &Preview{Main: "THE CONTENT", Extra: "THE STATS"}

	prompt := p.FirstQuestion("what stands out?")
	assert.Contains(t, prompt, "THE CONTENT")
	assert.Contains(t, prompt, "THE STATS")
	assert.Contains(t, prompt, "what stands out?")
}

func TestFollowUpOmitsContext(t *testing.T) {
	prompt := FollowUp("and now?")
	assert.Contains(t, prompt, "and now?")
	assert.Contains(t, prompt, "same document")
	assert.NotContains(t, prompt, "DOCUMENT PREVIEW")
}
