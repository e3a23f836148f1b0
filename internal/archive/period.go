package archive

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Period is a calendar month, or a single day when Day is set.
type Period struct {
	Year  int
	Month time.Month
	Day   int
}

func ParsePeriod(year, month, day string) (Period, error) {
	if len(year) != 4 || !digits(year) {
		return Period{}, fmt.Errorf("invalid year %q: expected YYYY", year)
	}
	y, err := strconv.Atoi(year)
	if err != nil || y <= 0 {
		return Period{}, fmt.Errorf("invalid year %q: expected YYYY", year)
	}

	m, err := strconv.Atoi(month)
	if err != nil || !digits(month) || len(month) > 2 || m < 1 || m > 12 {
		return Period{}, fmt.Errorf("invalid month %q: expected 01-12", month)
	}

	p := Period{Year: y, Month: time.Month(m)}
	if day == "" {
		return p, nil
	}

	d, err := strconv.Atoi(day)
	if err != nil || !digits(day) || len(day) > 2 || d < 1 || d > p.daysInMonth() {
		return Period{}, fmt.Errorf("invalid day %q for %04d-%02d", day, y, m)
	}
	p.Day = d

	return p, nil
}

// digits reports whether s is made only of ASCII digits. Atoi alone lets a
// leading sign through.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func (p Period) daysInMonth() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LastDay is the newest date the period covers.
func (p Period) LastDay() time.Time {
	day := p.Day
	if day == 0 {
		day = p.daysInMonth()
	}
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether a listing date (YYYY-MM-DD, optionally followed
// by a time) falls inside the period.
func (p Period) Contains(date string) bool {
	if len(date) < len(dateLayout) {
		return false
	}

	t, err := time.Parse(dateLayout, date[:len(dateLayout)])
	if err != nil {
		return false
	}

	if t.Year() != p.Year || t.Month() != p.Month {
		return false
	}

	return p.Day == 0 || t.Day() == p.Day
}

func (p Period) String() string {
	if p.Day == 0 {
		return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
	}
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, int(p.Month), p.Day)
}

// ListingURL points the archive at the last day of the period; the listing
// shows concerts published on or before that date.
func ListingURL(base string, p Period) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid archive url %q: %w", base, err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("invalid archive url %q: must be absolute", base)
	}

	q := u.Query()
	q.Set("date", p.LastDay().Format("01-02-2006"))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
