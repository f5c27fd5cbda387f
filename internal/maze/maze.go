// Package maze loads maze files and builds the immutable model the
// renderer and animator work from.
//
// The file format is line oriented: hex grid rows first (one digit per
// cell, masked to 4 bits, unparseable digits read as 0), then an entry
// line "row,col", an exit line and finally the move string. Trailing
// blank lines are ignored.
package maze

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/mazeviz/internal/geom"
	"github.com/san-kum/mazeviz/internal/path"
)

// Model is the parsed maze plus its derived path. Built once per load
// and read-only afterwards.
type Model struct {
	Grid  [][]uint8
	Entry geom.GridCoord
	Exit  geom.GridCoord
	Moves string
	Path  []geom.GridCoord
}

// Rows returns the number of grid rows.
func (m *Model) Rows() int { return len(m.Grid) }

// Cols returns the widest row; rows may be ragged.
func (m *Model) Cols() int {
	max := 0
	for _, row := range m.Grid {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Load reads and parses a maze file.
func Load(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse builds a Model from maze file contents.
func Parse(data string) (*Model, error) {
	lines := strings.Split(data, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 4 {
		return nil, ErrTruncated
	}

	moves := lines[len(lines)-1]
	exitLine := lines[len(lines)-2]
	entryLine := lines[len(lines)-3]
	lines = lines[:len(lines)-3]

	entry, err := parseCoord(entryLine)
	if err != nil {
		return nil, err
	}
	exit, err := parseCoord(exitLine)
	if err != nil {
		return nil, err
	}

	var grid [][]uint8
	for _, line := range lines {
		if line == "" {
			continue
		}
		row := make([]uint8, 0, len(line))
		for _, ch := range line {
			v, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				v = 0
			}
			row = append(row, uint8(v)&0xF)
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	return &Model{
		Grid:  grid,
		Entry: entry,
		Exit:  exit,
		Moves: moves,
		Path:  path.Build(entry, moves),
	}, nil
}

func parseCoord(line string) (geom.GridCoord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return geom.GridCoord{}, fmt.Errorf("%w: %q", ErrBadCoordinate, line)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.GridCoord{}, fmt.Errorf("%w: %q", ErrBadCoordinate, line)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.GridCoord{}, fmt.Errorf("%w: %q", ErrBadCoordinate, line)
	}
	return geom.GridCoord{Row: row, Col: col}, nil
}

// Validate reports the first path cell outside the grid extents. The
// drawing layers never bounds-check, so hosts run this after loading.
func (m *Model) Validate() error {
	for i, c := range m.Path {
		if c.Row < 0 || c.Row >= len(m.Grid) || c.Col < 0 || c.Col >= len(m.Grid[c.Row]) {
			return fmt.Errorf("%w: step %d at (%d,%d)", ErrPathOutOfBounds, i, c.Row, c.Col)
		}
	}
	return nil
}
