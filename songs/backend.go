// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package songs

import (
	"log/slog"
	"slices"

	"github.com/jba/rbtree"
)

// mostRecentCount is the number of songs returned by FiveMost.
const mostRecentCount = 5

// A Backend answers queries over a collection of songs ordered by energy.
//
// A Backend remembers the energy range from the last call to GetRange
// and the danceability threshold from the last call to FilterSongs;
// later queries apply both. A Backend is not safe for concurrent use.
type Backend struct {
	songs rbtree.IterableCollection[*Song]
	log   *slog.Logger

	// Nil means unbounded or unfiltered.
	low, high *int
	threshold *int
}

// NewBackend returns a Backend over songs, which must be ordered by
// CompareEnergy. A nil log discards log output.
func NewBackend(songs rbtree.IterableCollection[*Song], log *slog.Logger) *Backend {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Backend{songs: songs, log: log}
}

// ReadData loads the songs in the CSV file at path.
func (b *Backend) ReadData(path string) error {
	n, err := LoadFile(path, b.songs)
	b.log.Debug("read songs", "path", path, "count", n, "total", b.songs.Len())
	return err
}

// GetRange returns the titles of the songs with energy in [low, high]
// that pass the danceability filter, ordered by energy.
// A nil bound is unbounded. The range is remembered for later queries.
func (b *Backend) GetRange(low, high *int) []string {
	b.low, b.high = clone(low), clone(high)
	return titles(b.matching())
}

// FilterSongs sets the danceability filter to songs whose danceability
// is greater than threshold, and returns the titles of the songs in the
// remembered energy range that pass it, ordered by energy.
// A nil threshold clears the filter and returns no titles.
func (b *Backend) FilterSongs(threshold *int) []string {
	if threshold == nil {
		b.threshold = nil
		return []string{}
	}
	b.threshold = clone(threshold)
	return titles(b.matching())
}

// FiveMost returns the titles of the five most recent songs in the
// remembered energy range that pass the danceability filter, newest first.
// Songs from the same year are ordered by energy.
func (b *Backend) FiveMost() []string {
	songs := b.matching()
	slices.SortStableFunc(songs, func(x, y *Song) int {
		return y.Year - x.Year
	})
	return titles(songs[:min(mostRecentCount, len(songs))])
}

// matching returns the songs in the remembered range that pass the filter,
// ordered by energy.
func (b *Backend) matching() []*Song {
	b.songs.SetIteratorMin(energyProbe(b.low))
	b.songs.SetIteratorMax(energyProbe(b.high))
	var out []*Song
	for s := range b.songs.All() {
		if b.threshold == nil || s.Danceability > *b.threshold {
			out = append(out, s)
		}
	}
	b.log.Debug("query", "low", fmtBound(b.low), "high", fmtBound(b.high),
		"threshold", fmtBound(b.threshold), "matches", len(out))
	return out
}

func titles(songs []*Song) []string {
	ts := make([]string, 0, len(songs))
	for _, s := range songs {
		ts = append(ts, s.Title)
	}
	return ts
}

func clone(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func fmtBound(p *int) any {
	if p == nil {
		return "none"
	}
	return *p
}
