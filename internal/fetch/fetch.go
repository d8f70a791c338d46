// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads remote resources with checksum gating and
// opportunistic resume. A resource is considered already satisfied when the
// local file's SHA-1 digest matches the expected checksum; only then is the
// network skipped entirely.
package fetch

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pdiddy/nuclide-data/pkg/types"
)

// DefaultChunkSize is the streaming buffer size for downloads.
const DefaultChunkSize = 4096000

// StatusError reports an HTTP response status that is neither 200 nor 206.
// The reference behavior was to silently write nothing on such responses;
// surfacing it keeps a truncated or missing download from passing unnoticed.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP %d from %s", e.StatusCode, e.URL)
}

// Digest returns the hex-encoded SHA-1 digest of the file at path.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Verify reports whether the file at path exists and its SHA-1 digest
// equals checksum.
func Verify(path, checksum string) bool {
	digest, err := Digest(path)
	if err != nil {
		return false
	}
	return digest == checksum
}

// EnsureFetched makes the file at path match checksum, downloading from url
// if it does not already. When the local file verifies, no network request is
// made and skipped is true. Otherwise the download resumes from the current
// file length via a Range request, and the result is re-verified before
// returning.
func EnsureFetched(client *http.Client, url, checksum, path string, cfg types.FetchConfig) (skipped bool, err error) {
	if Verify(path, checksum) {
		return true, nil
	}

	if err := download(client, url, path, cfg); err != nil {
		return false, err
	}

	digest, err := Digest(path)
	if err != nil {
		return false, fmt.Errorf("verifying download: %w", err)
	}
	if digest != checksum {
		return false, fmt.Errorf("checksum mismatch for %s: got %s, want %s (remove the file and retry)", path, digest, checksum)
	}
	return false, nil
}

// download appends the body of url to path, resuming from the file's current
// length. The Range request is opportunistic: a 206 response continues the
// partial file, while a 200 response means the server ignored the range, in
// which case the file is truncated and rewritten from the start rather than
// appended to. Any other status is a StatusError.
func download(client *http.Client, url, path string, cfg types.FetchConfig) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	offset := info.Size()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent:
		// Server honored the range; keep appending.
	case http.StatusOK:
		// Full content despite the range header. Start over.
		if offset > 0 {
			if err := f.Truncate(0); err != nil {
				return fmt.Errorf("truncating %s: %w", path, err)
			}
		}
	default:
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("writing %s: %w", path, writeErr)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("reading response body: %w", readErr)
		}
	}
}
