package archive

import (
	"context"
	"fmt"
	"io"

	"github.com/brogergvhs/tinydesk/internal/output"
	"github.com/brogergvhs/tinydesk/internal/providers"
	"github.com/brogergvhs/tinydesk/internal/ui"
)

type Options struct {
	ArchiveURL string
	Range      string
	List       string
	DryRun     bool
}

type Summary struct {
	Listing string
	Found   int
	Files   []string
	Stats   *ui.Stats
}

// Runner scrapes every concert of a period, one page at a time, in listing
// order. The first failure stops the run; files already written stay.
type Runner struct {
	scraper  providers.Scraper
	writer   *output.Writer
	log      *ui.Logger
	out      io.Writer
	progress *ui.MPBProgressManager
}

// NewRunner returns a Runner printing to out. A nil progress manager prints
// one line per concert instead of a bar.
func NewRunner(s providers.Scraper, w *output.Writer, log *ui.Logger, out io.Writer, pm *ui.MPBProgressManager) *Runner {
	return &Runner{
		scraper:  s,
		writer:   w,
		log:      log,
		out:      out,
		progress: pm,
	}
}

func (r *Runner) Run(ctx context.Context, p Period, opts Options) (*Summary, error) {
	listing, err := ListingURL(opts.ArchiveURL, p)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Listing: listing, Files: []string{}, Stats: &ui.Stats{}}
	_, _ = fmt.Fprintf(r.out, "Listing %s\n", listing)

	entries, err := r.scraper.ListConcerts(ctx, listing)
	if err != nil {
		return sum, fmt.Errorf("archive listing %s: %w", listing, err)
	}

	var inPeriod []providers.Entry
	for _, e := range entries {
		if !p.Contains(e.Date) {
			r.log.Debugf("skipping %s (date %q outside %s)\n", e.URL, e.Date, p)
			continue
		}
		inPeriod = append(inPeriod, e)
	}
	sum.Found = len(inPeriod)

	selected, err := Select(inPeriod, opts.Range, opts.List)
	if err != nil {
		return sum, err
	}

	_, _ = fmt.Fprintf(r.out, "Found %d concerts for %s, %d selected.\n", len(inPeriod), p, len(selected))

	if opts.DryRun {
		for i, e := range selected {
			_, _ = fmt.Fprintf(r.out, "%3d) %s  [%s]\n    %s\n", i+1, e.Title, e.Date, e.URL)
		}
		return sum, nil
	}

	if len(selected) == 0 {
		return sum, nil
	}

	var h *ui.ProgressHandle
	if r.progress != nil {
		h = r.progress.Register(p.String())
		h.SetTotal(len(selected))
	}

	for i, e := range selected {
		if err := ctx.Err(); err != nil {
			h.Abort()
			return sum, err
		}

		c, err := r.scraper.Scrape(ctx, e.URL)
		if err != nil {
			h.Abort()
			return sum, fmt.Errorf("concert %d/%d %s: %w", i+1, len(selected), e.URL, err)
		}

		path, n, err := r.writer.Write(c)
		if err != nil {
			h.Abort()
			return sum, fmt.Errorf("concert %d/%d %s: %w", i+1, len(selected), e.URL, err)
		}

		sum.Files = append(sum.Files, path)
		sum.Stats.TotalConcerts.Add(1)
		sum.Stats.TotalSongs.Add(int64(len(c.SetList)))
		sum.Stats.TotalBytes.Add(n)

		if h == nil {
			r.log.Infof("%d/%d %s -> %s\n", i+1, len(selected), c.Artist, path)
		}
		h.Update(i+1, sum.Stats.TotalBytes.Load())
	}

	h.MarkDone()

	return sum, nil
}
