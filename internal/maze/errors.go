package maze

import "errors"

// Domain errors for maze loading.
var (
	// ErrTruncated indicates the file ends before the entry/exit/moves
	// trailer lines.
	ErrTruncated = errors.New("maze: file truncated (need grid, entry, exit and moves lines)")

	// ErrBadCoordinate indicates an entry or exit line that is not a
	// "row,col" integer pair.
	ErrBadCoordinate = errors.New("maze: malformed coordinate line")

	// ErrEmptyGrid indicates a file with no grid rows.
	ErrEmptyGrid = errors.New("maze: no grid rows before trailer")

	// ErrPathOutOfBounds indicates a move sequence that walks outside
	// the grid. Reported by Validate, never enforced by the renderer.
	ErrPathOutOfBounds = errors.New("maze: path leaves the grid")
)
