package cubefold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/gridmap"
)

// sampleRows is the classic 4×4-face net with walls.
var sampleRows = []string{
	"        ...#",
	"        .#..",
	"        #...",
	"        ....",
	"...#.......#",
	"........#...",
	"..#....#....",
	"..........#.",
	"        ...#....",
	"        .....#..",
	"        .#......",
	"        ......#.",
}

// tallRows is a different net shape (the "real input" layout) with W=4.
var tallRows = []string{
	"    ........",
	"    ........",
	"    ........",
	"    ........",
	"    ....",
	"    ....",
	"    ....",
	"    ....",
	"........",
	"........",
	"........",
	"........",
	"....",
	"....",
	"....",
	"....",
}

// crossRows is the cross-shaped net: a column of four with arms on row 1.
var crossRows = []string{
	"    ....",
	"    ....",
	"    ....",
	"    ....",
	"............",
	"............",
	"............",
	"............",
	"    ....",
	"    ....",
	"    ....",
	"    ....",
	"    ....",
	"    ....",
	"    ....",
	"    ....",
}

// mustGrid builds a GridMap from picture rows: ' ' off-net, '.' open, '#' wall.
func mustGrid(t testing.TB, rows ...string) *gridmap.GridMap {
	t.Helper()
	cells := make(map[gridmap.Cell]gridmap.Terrain)
	for y, row := range rows {
		for x, b := range []byte(row) {
			switch b {
			case '.':
				cells[gridmap.Cell{X: x, Y: y}] = gridmap.Open
			case '#':
				cells[gridmap.Cell{X: x, Y: y}] = gridmap.Wall
			}
		}
	}
	gm, err := gridmap.New(cells)
	require.NoError(t, err)
	return gm
}

// withBlock returns rows with a w×w block of open cells added at anchor.
func withBlock(rows []string, anchor gridmap.Cell, w int) []string {
	out := append([]string(nil), rows...)
	for len(out) < anchor.Y+w {
		out = append(out, "")
	}
	for y := anchor.Y; y < anchor.Y+w; y++ {
		row := []byte(out[y])
		for len(row) < anchor.X+w {
			row = append(row, ' ')
		}
		for x := anchor.X; x < anchor.X+w; x++ {
			row[x] = '.'
		}
		out[y] = string(row)
	}
	return out
}

// withoutBlock returns rows with the w×w block at anchor blanked out.
func withoutBlock(rows []string, anchor gridmap.Cell, w int) []string {
	out := append([]string(nil), rows...)
	for y := anchor.Y; y < anchor.Y+w && y < len(out); y++ {
		row := []byte(out[y])
		for x := anchor.X; x < anchor.X+w && x < len(row); x++ {
			row[x] = ' '
		}
		out[y] = string(row)
	}
	return out
}
