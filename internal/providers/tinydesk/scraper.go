package tinydesk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/tinydesk/internal/providers"
	"github.com/brogergvhs/tinydesk/internal/ui"

	"golang.org/x/net/html/charset"
)

type Scraper struct {
	client       *http.Client
	log          *ui.Logger
	strictStatus bool
}

var _ providers.Scraper = (*Scraper)(nil)

// NewScraper returns a Scraper using c for every request. With strictStatus
// unset, error pages are parsed like any other page.
func NewScraper(c *http.Client, log *ui.Logger, strictStatus bool) *Scraper {
	return &Scraper{
		client:       c,
		log:          log,
		strictStatus: strictStatus,
	}
}

// Fetch performs a single GET and returns the body decoded to UTF-8.
func (s *Scraper) Fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w: invalid request for %s: %w", providers.ErrFetch, target, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %w", providers.ErrFetch, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.log.Debugf("failed to close response body for %s: %v\n", target, cerr)
		}
	}()

	s.log.Debugf("%s -> HTTP %d (%s)\n", target, resp.StatusCode, resp.Header.Get("Content-Type"))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if s.strictStatus {
			return "", fmt.Errorf("%w: %s returned HTTP %d", providers.ErrFetch, target, resp.StatusCode)
		}
		s.log.Infof("%s returned HTTP %d, parsing anyway\n", target, resp.StatusCode)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%w: failed to get response text: %w", providers.ErrFetch, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get response text: %w", providers.ErrFetch, err)
	}

	return string(data), nil
}

func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*providers.Concert, error) {
	raw, err := s.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	c := Extract(raw, pageURL)
	s.log.Debugf("extracted %q: %d songs, %d musicians\n", c.Artist, len(c.SetList), len(c.Musicians))

	return c, nil
}

func (s *Scraper) ListConcerts(ctx context.Context, listingURL string) ([]providers.Entry, error) {
	raw, err := s.Fetch(ctx, listingURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", providers.ErrFetch, listingURL, err)
	}

	entries := parseListing(doc, listingURL)
	s.log.Debugf("listing %s: %d entries\n", listingURL, len(entries))

	return entries, nil
}

func resolveURL(baseURL, href string) string {
	if href == "" {
		return baseURL
	}

	u, err := url.Parse(href)
	if err == nil && u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(baseURL)
	if err != nil || u == nil {
		return href
	}

	return b.ResolveReference(u).String()
}
