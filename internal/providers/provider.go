package providers

import (
	"context"
	"errors"
)

// ShowName is the fixed label written into every record.
const ShowName = "Tiny Desk Concerts"

var (
	// ErrFetch marks transport failures and undecodable response bodies.
	ErrFetch = errors.New("fetch failed")

	// ErrParse is reserved for selector misconfiguration. Selector constants
	// are compiled at init, so it is not returned at runtime.
	ErrParse = errors.New("parse failed")
)

type Song struct {
	SongNumber int    `json:"songNumber"`
	Title      string `json:"title"`
}

type Musician struct {
	Name        string   `json:"name"`
	Instruments []string `json:"instruments"`
}

// Concert is the record extracted from one concert page. Optional fields are
// nil when the page does not carry them.
type Concert struct {
	Artist      string     `json:"artist"`
	Source      string     `json:"source"`
	Show        string     `json:"show"`
	Date        *string    `json:"date"`
	Album       *string    `json:"album"`
	Description *string    `json:"description"`
	SetList     []Song     `json:"setList"`
	Musicians   []Musician `json:"musicians"`
}

// Entry is one concert page discovered on an archive listing.
type Entry struct {
	URL   string
	Title string
	Date  string
}

type Scraper interface {
	Scrape(ctx context.Context, url string) (*Concert, error)
	ListConcerts(ctx context.Context, listingURL string) ([]Entry, error)
}
