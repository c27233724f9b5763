// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package songs loads song records from CSV into an ordered collection
// and answers energy-range and danceability queries over them.
package songs

import "cmp"

// A Song is one record of the song catalog.
type Song struct {
	Title        string
	Artist       string
	Genre        string
	Year         int
	BPM          int
	Energy       int
	Danceability int
	Loudness     int
	Liveness     int
}

// CompareEnergy orders songs by energy. Songs of equal energy compare equal.
func CompareEnergy(a, b *Song) int {
	return cmp.Compare(a.Energy, b.Energy)
}

// energyProbe returns a song that compares equal to every song with the
// given energy, or nil if energy is nil.
func energyProbe(energy *int) *Song {
	if energy == nil {
		return nil
	}
	return &Song{Energy: *energy}
}
