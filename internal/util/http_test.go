package util

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func userAgentServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.Header.Get("User-Agent"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, c *http.Client, url string) string {
	t.Helper()

	resp, err := c.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	srv := userAgentServer(t)

	plain := NewHTTPClient(HTTPClientOptions{})
	assert.NotEqual(t, "tinydesk-test", get(t, plain, srv.URL))

	custom := NewHTTPClient(HTTPClientOptions{UserAgent: "tinydesk-test"})
	assert.Equal(t, "tinydesk-test", get(t, custom, srv.URL))
}

func TestNewHTTPClient_DebugLogging(t *testing.T) {
	srv := userAgentServer(t)
	log := &recordingLogger{}

	c := NewHTTPClient(HTTPClientOptions{
		Timeout:     5 * time.Second,
		DebugLogger: log,
	})
	assert.Equal(t, 5*time.Second, c.Timeout)

	get(t, c, srv.URL+"/page")

	require.Len(t, log.lines, 2)
	assert.Contains(t, log.lines[0], "HTTP client initialized")
	assert.Equal(t, "HTTP GET "+srv.URL+"/page\n", log.lines[1])
}
