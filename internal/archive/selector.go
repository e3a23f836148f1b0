package archive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brogergvhs/tinydesk/internal/providers"
)

// Select narrows entries by 1-based position. rng ("3-7") wins over list
// ("1,4,9"); with neither, all entries are returned.
func Select(all []providers.Entry, rng, list string) ([]providers.Entry, error) {
	if rng != "" {
		return FilterRange(all, rng)
	}
	if list != "" {
		return FilterList(all, list), nil
	}

	return all, nil
}

func FilterRange(all []providers.Entry, rng string) ([]providers.Entry, error) {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q: expected start-end", rng)
	}

	start, err1 := atoi(parts[0])
	end, err2 := atoi(parts[1])
	if err1 != nil || err2 != nil || start <= 0 || start > end {
		return nil, fmt.Errorf("invalid range %q: expected start-end", rng)
	}
	if end > len(all) {
		return nil, fmt.Errorf("range %q exceeds the %d concerts found", rng, len(all))
	}

	return all[start-1 : end], nil
}

// FilterList skips positions that are malformed or out of bounds.
func FilterList(all []providers.Entry, list string) []providers.Entry {
	out := []providers.Entry{}
	for n := range strings.SplitSeq(list, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		idx, err := atoi(n)
		if err != nil {
			continue
		}
		if idx > 0 && idx <= len(all) {
			out = append(out, all[idx-1])
		}
	}

	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
