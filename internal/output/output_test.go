package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePath(t *testing.T) {
	assert.Equal(t, "/docs/paper.md", DerivePath("/docs/paper.pdf"))
	assert.Equal(t, "scan.md", DerivePath("scan.png"))
	assert.Equal(t, "/a/b/report.md", DerivePath("/a/b/report.docx"))
}

func TestWriteCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.md")

	require.NoError(t, Write(path, "# Title\n\nbody"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody", string(b))
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	require.NoError(t, Write(path, "first"))
	require.NoError(t, Write(path, "second"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}
