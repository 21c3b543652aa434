package main

import (
	"errors"
	"io"
	"os"
)

// fetcher reads directions replies saved to disk.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	stdin io.Reader
}

// newFetcher creates a fetcher reading "-" from standard input.
func newFetcher() *fetcher {
	return &fetcher{stdin: os.Stdin}
}

// fetch returns the contents of path, or of standard input for "-".
func (f *fetcher) fetch(path string) ([]byte, error) {
	switch path {
	case "":
		return nil, errors.New("no payload given; use -payload")
	case "-":
		return io.ReadAll(f.stdin)
	}
	return os.ReadFile(path)
}
