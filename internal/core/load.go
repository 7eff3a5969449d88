package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrRowWidth reports a row whose cell count differs from the first row.
	ErrRowWidth = errors.New("row width mismatch")
	// ErrEmptyMap reports a map source without any non-blank rows.
	ErrEmptyMap = errors.New("map has no rows")
)

// Load parses the map text format: one row per non-blank line, top row first,
// cells separated by whitespace. Tokens that are not a valid cell value load as
// vacant. A GoalToken cell becomes the goal and is stored as vacant; if several
// are present the last one wins.
func Load(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		cells []uint8
		goal  *Cell
		w, h  int
		line  int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if w == 0 {
			w = len(fields)
		}
		if len(fields) != w {
			return nil, fmt.Errorf("line %d: %w: got %d cells, want %d", line, ErrRowWidth, len(fields), w)
		}
		for x, tok := range fields {
			v := parseCell(tok)
			if v == GoalToken {
				goal = &Cell{X: x, Y: h}
				v = 0
			}
			cells = append(cells, v)
		}
		h++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if h == 0 {
		return nil, ErrEmptyMap
	}
	return NewGrid(w, h, cells, goal)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// parseCell is deliberately lenient: anything that is not a byte-sized
// unsigned integer is vacant, and so is the reserved OutOfBounds value.
func parseCell(tok string) uint8 {
	v, err := strconv.ParseUint(tok, 10, 8)
	if err != nil || uint8(v) == OutOfBounds {
		return 0
	}
	return uint8(v)
}
