package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTarGz packs a single file into a gzipped tar, the shape the
// release pipeline publishes.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// releaseDownloadServer serves a latest-release check plus the archive and
// checksums for tag v2.0.0.
func releaseDownloadServer(t *testing.T, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/rmehra/retain/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/rmehra/retain/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(archive)
		case "/rmehra/retain/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAssetNameFor(t *testing.T) {
	known := []struct {
		goos, goarch, want string
	}{
		{"darwin", "amd64", "retain_Darwin_all.tar.gz"},
		{"darwin", "arm64", "retain_Darwin_all.tar.gz"},
		{"linux", "amd64", "retain_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "retain_Linux_arm64.tar.gz"},
		{"linux", "386", "retain_Linux_i386.tar.gz"},
		{"windows", "amd64", "retain_Windows_x86_64.zip"},
		{"windows", "arm64", "retain_Windows_arm64.zip"},
	}
	for _, tt := range known {
		t.Run(tt.goos+" "+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported targets", func(t *testing.T) {
		for _, pair := range [][2]string{{"freebsd", "amd64"}, {"linux", "mips"}} {
			_, err := assetNameFor(pair[0], pair[1])
			assert.Error(t, err, "%s/%s", pair[0], pair[1])
		}
	})
}

func TestParseChecksums(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		got := parseChecksums([]byte(
			"abc123  retain_Darwin_all.tar.gz\ndef456  retain_Linux_x86_64.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"retain_Darwin_all.tar.gz":   "abc123",
			"retain_Linux_x86_64.tar.gz": "def456",
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, map[string]string{}, parseChecksums(nil))
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		got := parseChecksums([]byte(
			"abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, got)
	})
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	payload := []byte("#!/bin/sh\necho retain")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "retain", payload)
		got, err := extractBinary(archive, "retain_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", payload)
		_, err := extractBinary(archive, "retain_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "retain")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	sum := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got, "target content should be the new binary")

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "exec bit should survive the swap")
}

func TestUpdate(t *testing.T) {
	payload := []byte("new-retain-binary")
	archive := buildTarGz(t, "retain", payload)
	archiveSum := sha256.Sum256(archive)
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "retain")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)
		server := releaseDownloadServer(t, asset, archive, []byte(checksums))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, payload, got, "binary should be replaced")
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses to update", func(t *testing.T) {
		err := NewChecker().Update(context.Background(),
			&UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL)).Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		checksums := fmt.Sprintf("%064d  %s\n", 0, asset)
		server := releaseDownloadServer(t, asset, archive, []byte(checksums))

		err := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/rmehra/retain/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		).Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}
