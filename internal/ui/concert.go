package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/tinydesk/internal/providers"
)

// PrintConcert writes the human-readable summary of an extracted concert.
func PrintConcert(w io.Writer, c *providers.Concert) {
	_, _ = fmt.Fprintf(w, "Artist: %s\n", c.Artist)

	if c.Album != nil {
		_, _ = fmt.Fprintf(w, "Story Title: %s\n", *c.Album)
	} else {
		_, _ = fmt.Fprintln(w, "No story title found")
	}

	if c.Date != nil {
		_, _ = fmt.Fprintf(w, "Date: %s\n", *c.Date)
	} else {
		_, _ = fmt.Fprintln(w, "No date found")
	}

	if len(c.SetList) > 0 {
		_, _ = fmt.Fprintln(w, "\nSet list:")
		for _, s := range c.SetList {
			_, _ = fmt.Fprintf(w, "%d. %s\n", s.SongNumber, s.Title)
		}
	} else {
		_, _ = fmt.Fprintln(w, "No set list found")
	}

	if len(c.Musicians) > 0 {
		_, _ = fmt.Fprintln(w, "\nMusicians:")
		for i, m := range c.Musicians {
			_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, m.Name)
			if len(m.Instruments) > 0 {
				_, _ = fmt.Fprintf(w, "   Instruments: %s\n", strings.Join(m.Instruments, ", "))
			}
		}
	} else {
		_, _ = fmt.Fprintln(w, "No musicians list found")
	}
}
