package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcbundle.dev/cli/internal/core/domain/artifact"
)

func zipPayload(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestFetch_SavesPlainFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jar-bytes"))
	}))
	defer server.Close()

	destDir := t.TempDir()
	d := NewDownloader()

	path, err := d.Fetch(context.Background(), server.URL+"/Vault.jar", "Vault.jar", destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "Vault.jar"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jar-bytes", string(content))

	_, err = os.Stat(path + ".download")
	assert.True(t, os.IsNotExist(err), "temp file must not survive a successful download")
}

func TestFetch_ExtractsZipAndRemovesArchive(t *testing.T) {
	payload := zipPayload(t, map[string]string{
		"GriefDefender.jar":     "plugin",
		"libs/GriefDefenderAPI": "api",
		"docs/readme.txt":       "docs",
	})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	destDir := t.TempDir()
	d := NewDownloader()

	path, err := d.Fetch(context.Background(), server.URL+"/GriefDefender.zip", "GriefDefender.zip", destDir)
	require.NoError(t, err)
	assert.Equal(t, destDir, path, "archive fetches report the destination directory")

	content, err := os.ReadFile(filepath.Join(destDir, "GriefDefender.jar"))
	require.NoError(t, err)
	assert.Equal(t, "plugin", string(content))

	_, err = os.Stat(filepath.Join(destDir, "docs", "readme.txt"))
	assert.NoError(t, err, "nested entries are extracted with their directories")

	_, err = os.Stat(filepath.Join(destDir, "GriefDefender.zip"))
	assert.True(t, os.IsNotExist(err), "archive is removed after extraction")
}

func TestFetch_RejectsTraversalEntries(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("../escape.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Write(buf.Bytes())
	}))
	defer server.Close()

	destDir := t.TempDir()
	d := NewDownloader()

	_, err = d.Fetch(context.Background(), server.URL+"/evil.zip", "evil.zip", destDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsafe archive path")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(destDir), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	destDir := t.TempDir()
	d := NewDownloader()

	_, err := d.Fetch(context.Background(), server.URL+"/missing.jar", "missing.jar", destDir)
	require.Error(t, err)

	var fetchErr *artifact.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.URL, server.URL)
	assert.Contains(t, err.Error(), "404")

	entries, readErr := os.ReadDir(destDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "failed downloads leave nothing behind")
}

func TestFetch_CreatesDestinationDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	destDir := filepath.Join(t.TempDir(), "plugins", "nested")
	d := NewDownloader()

	path, err := d.Fetch(context.Background(), server.URL+"/a.jar", "a.jar", destDir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
