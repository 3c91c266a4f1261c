package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (Storage, string, string) {
	t.Helper()
	tempRoot := t.TempDir()
	outputRoot := t.TempDir()
	s, err := NewLocalStorage(tempRoot, outputRoot)
	require.NoError(t, err)
	return s, tempRoot, outputRoot
}

func TestSaveTemp(t *testing.T) {
	s, tempRoot, _ := newTestStorage(t)
	content := []byte("pdf bytes")

	path, size, err := s.SaveTemp("job-1", "report.pdf", bytes.NewReader(content), 1<<20)
	require.NoError(t, err)

	assert.Equal(t, int64(len(content)), size)
	assert.Equal(t, filepath.Join(tempRoot, "job-1_report.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestSaveTemp_TooLargeDiscardsPartialFile(t *testing.T) {
	s, tempRoot, _ := newTestStorage(t)
	payload := bytes.Repeat([]byte("x"), 100)

	_, _, err := s.SaveTemp("job-1", "big.pdf", bytes.NewReader(payload), 99)
	require.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(tempRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial temp file must not survive")
}

func TestSaveTemp_ExactLimitAccepted(t *testing.T) {
	s, _, _ := newTestStorage(t)
	payload := bytes.Repeat([]byte("x"), 100)

	_, size, err := s.SaveTemp("job-1", "ok.pdf", bytes.NewReader(payload), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), size)
}

func TestSaveTemp_StripsDirectoryComponents(t *testing.T) {
	s, tempRoot, _ := newTestStorage(t)

	path, _, err := s.SaveTemp("job-1", "../../evil.pdf", strings.NewReader("x"), 10)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempRoot, "job-1_evil.pdf"), path)
}

func TestCreateJobDir_IsolatedPerJob(t *testing.T) {
	s, _, outputRoot := newTestStorage(t)

	a, err := s.CreateJobDir("job-a")
	require.NoError(t, err)
	b, err := s.CreateJobDir("job-b")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, filepath.Join(outputRoot, "job-a"), a)
	assert.DirExists(t, a)
	assert.DirExists(t, b)
}

func TestRemoveTemp_MissingFileIsNotAnError(t *testing.T) {
	s, tempRoot, _ := newTestStorage(t)
	assert.NoError(t, s.RemoveTemp(filepath.Join(tempRoot, "never-written.pdf")))
}

func TestReady(t *testing.T) {
	s, tempRoot, _ := newTestStorage(t)
	require.NoError(t, s.Ready())

	require.NoError(t, os.RemoveAll(tempRoot))
	assert.Error(t, s.Ready())
}
