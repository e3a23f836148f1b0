package tinydesk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/tinydesk/internal/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body><main>
  <article class="item">
    <div class="item-info">
      <h2 class="title"><a href="/2023/05/14/alpha-tiny-desk"> Alpha: Tiny Desk Concert </a></h2>
      <time datetime="2023-05-14"><span class="date">May 14, 2023</span></time>
    </div>
  </article>
  <article class="item">
    <div class="item-info">
      <h2 class="title"><a href="https://www.npr.org/2023/05/02/beta">Beta: Tiny Desk Concert</a></h2>
      <time datetime="2023-05-02T10:00:00-04:00">May 2, 2023</time>
    </div>
  </article>
  <article class="item">
    <h2 class="title"><a href="/2023/05/14/alpha-tiny-desk">Alpha again</a></h2>
  </article>
  <article class="item">
    <h2 class="title">No link</h2>
  </article>
  <aside><h2 class="title"><a href="/not-an-item">Sidebar</a></h2></aside>
</main></body></html>`

func TestParseListing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingPage))
	require.NoError(t, err)

	entries := parseListing(doc, "https://www.npr.org/series/tiny-desk-concerts/archive?date=05-31-2023")

	assert.Equal(t, []providers.Entry{
		{
			URL:   "https://www.npr.org/2023/05/14/alpha-tiny-desk",
			Title: "Alpha: Tiny Desk Concert",
			Date:  "2023-05-14",
		},
		{
			URL:   "https://www.npr.org/2023/05/02/beta",
			Title: "Beta: Tiny Desk Concert",
			Date:  "2023-05-02T10:00:00-04:00",
		},
	}, entries)
}

func TestParseListing_Empty(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	entries := parseListing(doc, "https://www.npr.org/archive")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestScraper_ListConcerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, listingPage)
	}))
	defer srv.Close()

	s := NewScraper(srv.Client(), nil, true)
	entries, err := s.ListConcerts(context.Background(), srv.URL+"/archive?date=05-31-2023")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, srv.URL+"/2023/05/14/alpha-tiny-desk", entries[0].URL)
}

func TestResolveURL(t *testing.T) {
	base := "https://www.npr.org/series/tiny-desk-concerts/archive?date=05-31-2023"

	assert.Equal(t, "https://www.npr.org/a", resolveURL(base, "/a"))
	assert.Equal(t, "https://other.org/b", resolveURL(base, "https://other.org/b"))
	assert.Equal(t, "https://www.npr.org/series/tiny-desk-concerts/c", resolveURL(base, "c"))
	assert.Equal(t, base, resolveURL(base, ""))
}
