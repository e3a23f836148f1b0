package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConcertPage = `<html><head><title>Bob's Burgers!! Band: Tiny Desk Concert</title></head><body>
<div class="dateblock"><time datetime="2023-05-14">May 14</time></div>
<div id="storytext">
  <p>They played at a desk.</p>
  <p>SET LIST</p>
  <ul><li>"Song A"</li><li>'Song B'</li><li>Song C</li></ul>
</div>
</body></html>`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/concert", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, testConcertPage)
	})
	mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><main></main></body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScrapeCommand(t *testing.T) {
	srv := newSite(t)
	dir := t.TempDir()

	// --- Act ---
	out, err := execute(t, "scrape", "--ignore-config", "--output", dir, srv.URL+"/concert")

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out, "Navigating to "+srv.URL+"/concert...")
	assert.Contains(t, out, "Artist: Bob's Burgers!! Band")
	assert.Contains(t, out, "1. Song A\n2. Song B\n3. Song C\n")

	path := filepath.Join(dir, "bobs_burgers_band_info.json")
	assert.Contains(t, out, "Information saved to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"show": "Tiny Desk Concerts"`)
	assert.Contains(t, string(data), `"album": null`)
}

func TestScrapeCommand_FetchError(t *testing.T) {
	srv := newSite(t)
	dir := t.TempDir()

	_, err := execute(t, "scrape", "--ignore-config", "--output", dir, srv.URL+"/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArchiveCommand_EmptyPeriod(t *testing.T) {
	srv := newSite(t)
	dir := t.TempDir()

	out, err := execute(t, "archive", "2023", "05",
		"--ignore-config", "--output", dir, "--no-progress",
		"--archive-url", srv.URL+"/archive")

	require.NoError(t, err)
	assert.Contains(t, out, "No concerts scraped for 2023-05.")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArchiveCommand_InvalidPeriod(t *testing.T) {
	_, err := execute(t, "archive", "2023", "13", "--ignore-config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid month")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tinydesk version: dev\n", out)
}
