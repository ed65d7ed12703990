package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParser_PlainText(t *testing.T) {
	path := writeFile(t, "notes.txt", "  TCP provides reliable delivery.\n")

	text, err := NewParser().Parse(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "TCP provides reliable delivery.", text)
}

func TestParser_NotAPDF(t *testing.T) {
	path := writeFile(t, "fake.pdf", "this is not a pdf")

	_, err := NewParser().Parse(context.Background(), path)

	assert.Error(t, err)
}

func TestParser_MissingFile(t *testing.T) {
	_, err := NewParser().Parse(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	assert.ErrorContains(t, err, "opening")
}

func TestParser_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "slides.pptx", "binary")

	_, err := NewParser().Parse(context.Background(), path)

	assert.ErrorContains(t, err, "unsupported file type")
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.PDF"))
	assert.True(t, Supported("notes.md"))
	assert.False(t, Supported("archive.zip"))
	assert.False(t, Supported("noext"))
}
