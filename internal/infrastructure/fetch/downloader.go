// Package fetch downloads resolved artifacts to disk and unpacks archive
// payloads.
package fetch

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mcbundle.dev/cli/internal/core/domain/artifact"
)

const downloadTimeout = 120 * time.Second

// Downloader fetches URLs to a destination directory.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a downloader with the standard timeout.
func NewDownloader() *Downloader {
	return &Downloader{httpClient: &http.Client{Timeout: downloadTimeout}}
}

// Fetch downloads url into destDir under filename. Zip payloads are
// extracted into destDir and the archive is removed; the returned path is
// then destDir itself. Non-archive payloads return the saved file path.
func (d *Downloader) Fetch(ctx context.Context, url, filename, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", &artifact.FetchError{URL: url, Err: err}
	}

	target := filepath.Join(destDir, filename)
	if err := d.downloadFile(ctx, url, target); err != nil {
		return "", &artifact.FetchError{URL: url, Err: err}
	}

	if strings.EqualFold(filepath.Ext(filename), ".zip") {
		if err := extractZip(target, destDir); err != nil {
			return "", &artifact.FetchError{URL: url, Err: err}
		}
		if err := os.Remove(target); err != nil {
			return "", &artifact.FetchError{URL: url, Err: err}
		}
		return destDir, nil
	}
	return target, nil
}

// downloadFile streams url to target via a temp file so a failed download
// never leaves a truncated artifact behind.
func (d *Downloader) downloadFile(ctx context.Context, url, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp := target + ".download"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// extractZip unpacks archivePath into destDir, refusing entries that would
// escape the destination.
func extractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	cleanDest := filepath.Clean(destDir)
	for _, entry := range reader.File {
		targetPath := filepath.Join(destDir, entry.Name)
		if !strings.HasPrefix(filepath.Clean(targetPath), cleanDest+string(os.PathSeparator)) {
			return fmt.Errorf("unsafe archive path: %s", entry.Name)
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(targetPath, 0o755); err != nil {
				return fmt.Errorf("create directory: %w", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}
		if err := extractEntry(entry, targetPath); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, targetPath string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, entry.Mode())
	if err != nil {
		return fmt.Errorf("create %s: %w", targetPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", targetPath, err)
	}
	return dst.Close()
}
