// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package songs

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jba/rbtree"
	"github.com/pkg/errors"
)

// Required CSV columns, matched case-insensitively against the header.
const (
	colTitle        = "title"
	colArtist       = "artist"
	colGenre        = "top genre"
	colYear         = "year"
	colBPM          = "bpm"
	colEnergy       = "nrgy"
	colDanceability = "dnce"
	colLoudness     = "db"
	colLiveness     = "live"
)

var requiredColumns = []string{
	colTitle, colArtist, colGenre, colYear, colBPM,
	colEnergy, colDanceability, colLoudness, colLiveness,
}

// LoadFile reads songs from the CSV file at path and inserts them into c.
// It returns the number of songs inserted.
func LoadFile(path string, c rbtree.Collection[*Song]) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not open song file: %s", path)
	}
	defer f.Close()

	n, err := ReadCSV(f, c)
	if err != nil {
		return n, errors.Wrapf(err, "could not load %s", path)
	}
	return n, nil
}

// ReadCSV reads songs from r and inserts them into c.
// The first record is a header naming the columns; columns may appear
// in any order and unknown columns are ignored.
// Songs read before an error are left in c.
func ReadCSV(r io.Reader, c rbtree.Collection[*Song]) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return 0, errors.New("empty CSV file or missing header line")
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not read CSV header")
	}
	index, err := columnIndex(header)
	if err != nil {
		return 0, err
	}

	var n int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrap(err, "could not read CSV record")
		}
		line, _ := cr.FieldPos(0)
		s, err := parseSong(record, index)
		if err != nil {
			return n, errors.Wrapf(err, "line %d", line)
		}
		if err := c.Insert(s); err != nil {
			return n, errors.Wrapf(err, "line %d", line)
		}
		n++
	}
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("missing required columns in the CSV header: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseSong(record []string, index map[string]int) (*Song, error) {
	field := func(col string) (string, error) {
		i := index[col]
		if i >= len(record) {
			return "", errors.Errorf("missing %q field", col)
		}
		return strings.TrimSpace(record[i]), nil
	}
	var err error
	str := func(col string) string {
		if err != nil {
			return ""
		}
		var v string
		v, err = field(col)
		return v
	}
	num := func(col string) int {
		v := str(col)
		if err != nil {
			return 0
		}
		var n int
		n, err = strconv.Atoi(v)
		if err != nil {
			err = errors.Wrapf(err, "column %q", col)
		}
		return n
	}

	s := &Song{
		Title:        str(colTitle),
		Artist:       str(colArtist),
		Genre:        str(colGenre),
		Year:         num(colYear),
		BPM:          num(colBPM),
		Energy:       num(colEnergy),
		Danceability: num(colDanceability),
		Loudness:     num(colLoudness),
		Liveness:     num(colLiveness),
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
