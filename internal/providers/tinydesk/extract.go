package tinydesk

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/brogergvhs/tinydesk/internal/providers"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	setListMarker   = "SET LIST"
	musiciansMarker = "MUSICIANS"

	quoteChars = "\"'“”‘’"
)

var (
	titleSel      = cascadia.MustCompile("title")
	storyTitleSel = cascadia.MustCompile(".storytitle h1")
	dateSel       = cascadia.MustCompile(".dateblock time[datetime]")
	storyTextSel  = cascadia.MustCompile("#storytext")
	paragraphSel  = cascadia.MustCompile("p")
	listItemSel   = cascadia.MustCompile("li")
)

// Extract builds a Concert from a concert page. Missing elements leave the
// matching fields nil or empty; it never fails.
func Extract(raw, source string) *providers.Concert {
	c := &providers.Concert{
		Source:    source,
		Show:      providers.ShowName,
		SetList:   []providers.Song{},
		Musicians: []providers.Musician{},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return c
	}

	c.Artist = artistFromTitle(doc.FindMatcher(titleSel).First().Text())

	if h := doc.FindMatcher(storyTitleSel).First(); h.Length() > 0 {
		if t := strings.TrimSpace(h.Text()); t != "" {
			c.Album = &t
		}
	}

	if d, ok := doc.FindMatcher(dateSel).First().Attr("datetime"); ok {
		if d = strings.TrimSpace(d); d != "" {
			c.Date = &d
		}
	}

	extractStory(doc.FindMatcher(storyTextSel).First(), c)

	return c
}

func artistFromTitle(title string) string {
	artist, _, _ := strings.Cut(title, ":")
	return strings.TrimSpace(artist)
}

// extractStory walks the story paragraphs. Description collection stops at
// the first marker paragraph and never resumes.
func extractStory(story *goquery.Selection, c *providers.Concert) {
	var desc []string
	descDone := false

	story.FindMatcher(paragraphSel).Each(func(_ int, p *goquery.Selection) {
		text := p.Text()
		hasSetList := strings.Contains(text, setListMarker)
		hasMusicians := strings.Contains(text, musiciansMarker)

		if hasSetList || hasMusicians {
			descDone = true
		}
		if !descDone {
			if t := strings.TrimSpace(text); t != "" {
				desc = append(desc, t)
			}
		}

		if hasSetList {
			if list := nextListContainer(p); list != nil {
				c.SetList = append(c.SetList, parseSongs(list)...)
			}
		}
		if hasMusicians {
			if list := nextListContainer(p); list != nil {
				c.Musicians = append(c.Musicians, parseMusicians(list)...)
			}
		}
	})

	if len(desc) > 0 {
		d := strings.Join(desc, "\n\n")
		c.Description = &d
	}
}

// nextListContainer returns the first ul/ol among the following siblings of
// p, or nil.
func nextListContainer(p *goquery.Selection) *goquery.Selection {
	if p.Length() == 0 {
		return nil
	}

	for n := p.Get(0).NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && isListContainer(n) {
			return p.NextAll().FilterNodes(n)
		}
	}

	return nil
}

func isListContainer(n *html.Node) bool {
	return n.DataAtom == atom.Ul || n.DataAtom == atom.Ol
}

func parseSongs(list *goquery.Selection) []providers.Song {
	songs := []providers.Song{}
	list.ChildrenMatcher(listItemSel).Each(func(i int, li *goquery.Selection) {
		songs = append(songs, providers.Song{
			SongNumber: i + 1,
			Title:      cleanItem(li.Text()),
		})
	})

	return songs
}

func parseMusicians(list *goquery.Selection) []providers.Musician {
	out := []providers.Musician{}
	list.ChildrenMatcher(listItemSel).Each(func(_ int, li *goquery.Selection) {
		out = append(out, parseMusician(cleanItem(li.Text())))
	})

	return out
}

// parseMusician splits "Name: instrument, instrument" on the first colon.
// Instrument segments are trimmed and blank ones dropped, so "Lee:" and
// "a, , b" never yield empty instrument names.
func parseMusician(s string) providers.Musician {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return providers.Musician{Name: s, Instruments: []string{}}
	}

	instruments := []string{}
	for part := range strings.SplitSeq(rest, ",") {
		if p := strings.TrimSpace(part); p != "" {
			instruments = append(instruments, p)
		}
	}

	return providers.Musician{
		Name:        strings.TrimSpace(name),
		Instruments: instruments,
	}
}

// cleanItem trims whitespace and any leading or trailing run of straight or
// curly quotes, so typographic quoting on the page is stripped as well.
func cleanItem(s string) string {
	s = strings.Trim(strings.TrimSpace(s), quoteChars)
	return strings.TrimSpace(s)
}
