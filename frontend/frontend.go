// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frontend implements the line-oriented command interpreter
// for querying a song catalog.
package frontend

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Backend is the query layer driven by the interpreter.
// It is implemented by *songs.Backend.
type Backend interface {
	ReadData(path string) error
	GetRange(low, high *int) []string
	FilterSongs(threshold *int) []string
	FiveMost() []string
}

const instructions = `Available commands:
load FILEPATH - Load data from the specified file.
energy MAX - Set the maximum energy level for songs.
energy MIN to MAX - Set the energy range for songs.
danceability MIN - Set the minimum danceability threshold.
show MAX_COUNT - Show the first MAX_COUNT songs.
show most recent - Show the five most recent songs.
help - Display these instructions again.
quit - Exit the program.
`

// A Frontend reads commands from its input and prints results to its output.
type Frontend struct {
	in      *bufio.Scanner
	out     io.Writer
	backend Backend
	log     *slog.Logger
}

// New returns a Frontend reading commands from in and writing to out.
// A nil log discards log output.
func New(in io.Reader, out io.Writer, backend Backend, log *slog.Logger) *Frontend {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Frontend{
		in:      bufio.NewScanner(in),
		out:     out,
		backend: backend,
		log:     log,
	}
}

// RunCommandLoop prints the instructions, then reads and executes
// commands until "quit" or the end of the input.
func (f *Frontend) RunCommandLoop() error {
	f.DisplayCommandInstructions()
	for {
		fmt.Fprint(f.out, "Enter command: ")
		if !f.in.Scan() {
			fmt.Fprintln(f.out)
			return f.in.Err()
		}
		command := strings.TrimSpace(f.in.Text())
		if strings.EqualFold(command, "quit") {
			fmt.Fprintln(f.out, "Exiting the program.")
			return nil
		}
		f.ExecuteSingleCommand(command)
	}
}

// DisplayCommandInstructions prints the syntax of every command.
func (f *Frontend) DisplayCommandInstructions() {
	fmt.Fprint(f.out, instructions)
}

// ExecuteSingleCommand runs one command and prints its result or an error.
func (f *Frontend) ExecuteSingleCommand(command string) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		f.errorf("Unknown command.")
		return
	}
	f.log.Debug("command", "line", command)

	switch action := strings.ToLower(parts[0]); action {
	case "load":
		f.load(parts)
	case "energy":
		f.energy(parts)
	case "danceability":
		f.danceability(parts)
	case "show":
		f.show(parts)
	case "help":
		f.DisplayCommandInstructions()
	default:
		f.errorf("Unknown command.")
	}
}

func (f *Frontend) load(parts []string) {
	if len(parts) < 2 {
		f.errorf("Missing file path.")
		return
	}
	if err := f.backend.ReadData(parts[1]); err != nil {
		f.log.Warn("load failed", "path", parts[1], "err", err)
		f.errorf("%v", err)
		return
	}
	fmt.Fprintln(f.out, "Data loaded successfully.")
}

func (f *Frontend) energy(parts []string) {
	switch {
	case len(parts) == 2:
		hi, ok := f.atoi(parts[1])
		if !ok {
			return
		}
		songs := f.backend.GetRange(nil, &hi)
		fmt.Fprintf(f.out, "Songs with energy up to %d:\n", hi)
		f.displaySongs(songs)
	case len(parts) == 4 && strings.EqualFold(parts[2], "to"):
		lo, ok := f.atoi(parts[1])
		if !ok {
			return
		}
		hi, ok := f.atoi(parts[3])
		if !ok {
			return
		}
		songs := f.backend.GetRange(&lo, &hi)
		fmt.Fprintf(f.out, "Songs with energy between %d and %d:\n", lo, hi)
		f.displaySongs(songs)
	default:
		f.errorf("Invalid energy command syntax.")
	}
}

func (f *Frontend) danceability(parts []string) {
	if len(parts) < 2 {
		f.errorf("Missing danceability threshold.")
		return
	}
	threshold, ok := f.atoi(parts[1])
	if !ok {
		return
	}
	songs := f.backend.FilterSongs(&threshold)
	fmt.Fprintf(f.out, "Songs with danceability above %d:\n", threshold)
	f.displaySongs(songs)
}

func (f *Frontend) show(parts []string) {
	switch {
	case len(parts) < 2:
		f.errorf("Missing show argument.")
	case len(parts) >= 3 && strings.EqualFold(parts[1], "most") && strings.EqualFold(parts[2], "recent"):
		songs := f.backend.FiveMost()
		fmt.Fprintln(f.out, "Five most recent songs:")
		f.displaySongs(songs)
	default:
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			f.errorf("Invalid number format for show command.")
			return
		}
		if n < 0 {
			f.errorf("Show count must not be negative.")
			return
		}
		songs := f.backend.GetRange(nil, nil)
		if len(songs) > n {
			songs = songs[:n]
		}
		fmt.Fprintf(f.out, "First %d songs:\n", n)
		f.displaySongs(songs)
	}
}

// atoi parses s, printing an error if it is not a number.
func (f *Frontend) atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		f.errorf("Invalid number format.")
		return 0, false
	}
	return n, true
}

func (f *Frontend) displaySongs(songs []string) {
	if len(songs) == 0 {
		fmt.Fprintln(f.out, "No songs found.")
		return
	}
	for _, s := range songs {
		fmt.Fprintln(f.out, s)
	}
}

func (f *Frontend) errorf(format string, args ...any) {
	fmt.Fprintf(f.out, "Error: "+format+"\n", args...)
}
