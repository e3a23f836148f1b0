package ui

import "sync/atomic"

// Stats is read by progress decorators while the archive runner updates it.
type Stats struct {
	TotalConcerts atomic.Int64
	TotalSongs    atomic.Int64
	TotalBytes    atomic.Int64
}
