package tinydesk

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/brogergvhs/tinydesk/internal/providers"
)

var (
	listingItemSel = cascadia.MustCompile("article.item")
	listingLinkSel = cascadia.MustCompile(".title a[href]")
	listingDateSel = cascadia.MustCompile("time[datetime]")
)

// parseListing returns the concert entries of an archive listing in document
// order. Links are resolved against pageURL and duplicates dropped.
func parseListing(doc *goquery.Document, pageURL string) []providers.Entry {
	out := []providers.Entry{}
	seen := map[string]bool{}

	doc.FindMatcher(listingItemSel).Each(func(_ int, item *goquery.Selection) {
		a := item.FindMatcher(listingLinkSel).First()
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}

		u := resolveURL(pageURL, strings.TrimSpace(href))
		if seen[u] {
			return
		}
		seen[u] = true

		date, _ := item.FindMatcher(listingDateSel).First().Attr("datetime")

		out = append(out, providers.Entry{
			URL:   u,
			Title: strings.TrimSpace(a.Text()),
			Date:  strings.TrimSpace(date),
		})
	})

	return out
}
