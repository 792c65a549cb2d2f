// Package burrow describes solver regression cases: a diagram file paired
// with the cost the solver must report for it.
package burrow

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/timewinder-dev/burrow/puzzle"
)

var ErrMissingBoard = errors.New("case has no board")

type Case struct {
	Board    string `toml:"board"`
	Expected int    `toml:"expected"`
	Unfold   bool   `toml:"unfold,omitempty"`
	// Slow cases are skipped by `go test -short`.
	Slow bool `toml:"slow,omitempty"`

	dir string
}

func parseCase(r io.Reader) (*Case, error) {
	var c Case
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	if c.Board == "" {
		return nil, ErrMissingBoard
	}
	return &c, nil
}

// LoadCase reads a case file. The board path is resolved against the
// directory holding the case.
func LoadCase(path string) (*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseCase(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

func (c *Case) BoardPath() string {
	if filepath.IsAbs(c.Board) {
		return c.Board
	}
	return filepath.Join(c.dir, c.Board)
}

// LoadBoard parses the case's diagram, unfolding it when asked to.
func (c *Case) LoadBoard() (puzzle.State, error) {
	f, err := os.Open(c.BoardPath())
	if err != nil {
		return puzzle.State{}, err
	}
	defer f.Close()
	board, err := puzzle.Parse(f)
	if err != nil {
		return puzzle.State{}, fmt.Errorf("%s: %w", c.Board, err)
	}
	if c.Unfold {
		return puzzle.Unfold(board)
	}
	return board, nil
}
