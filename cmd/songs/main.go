// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command songs is an interactive query tool over a CSV song catalog.
// Songs are kept in a red-black tree ordered by energy.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jba/rbtree"
	"github.com/jba/rbtree/frontend"
	"github.com/jba/rbtree/songs"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "songs: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, loads the --data file if one is given, and then reads
// commands from stdin until "quit" or the end of the input.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("songs", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	dataFile := flags.StringP("data", "d", "", "Path to a CSV song file to load before reading commands. More files can be loaded with the load command.")
	verbose := flags.BoolP("verbose", "v", false, "Verbose output, helps when troubleshooting.")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return errors.Errorf("unexpected arguments: %v", flags.Args())
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	backend := songs.NewBackend(rbtree.NewFunc(songs.CompareEnergy), log)
	if *dataFile != "" {
		if err := backend.ReadData(*dataFile); err != nil {
			return err
		}
	}

	return errors.Wrap(frontend.New(stdin, stdout, backend, log).RunCommandLoop(), "reading commands")
}
