// Package path translates a maze move sequence into grid coordinates.
package path

import "github.com/san-kum/mazeviz/internal/geom"

// Build converts a move string into the ordered list of cells visited,
// starting at entry. Recognized moves are N, S, E and W; any other
// character contributes no point. No bounds checking is performed: a
// path that walks off the grid is a data problem for the caller to
// report.
func Build(entry geom.GridCoord, moves string) []geom.GridCoord {
	p := make([]geom.GridCoord, 1, len(moves)+1)
	p[0] = entry

	row, col := entry.Row, entry.Col
	for _, move := range moves {
		switch move {
		case 'N':
			row--
		case 'S':
			row++
		case 'E':
			col++
		case 'W':
			col--
		default:
			continue
		}
		p = append(p, geom.GridCoord{Row: row, Col: col})
	}

	return p
}
