package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "rapport.pdf")

	path, err := Save([]byte("%PDF-1.4 fake"), target)
	require.NoError(t, err)
	assert.Equal(t, target, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestSaveDefaultsFilename(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	path, err := Save([]byte("x"), "   ")
	require.NoError(t, err)
	assert.Equal(t, DefaultFilename, path)
	_, err = os.Stat(DefaultFilename)
	assert.NoError(t, err)
}

func TestSaveRejectsEmptyArtifact(t *testing.T) {
	_, err := Save(nil, "out.pdf")
	assert.Error(t, err)
}
