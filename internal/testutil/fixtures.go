package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/boardgame/internal/game/core"
)

// PlainBoard creates a flat w×h board of plain terrain
func PlainBoard(t *testing.T, w, h int) *core.Board {
	t.Helper()
	b, err := core.NewPlainBoard(w, h, core.TerrainPlain)
	require.NoError(t, err)
	return b
}

// BoardFromElevations builds a board from rows of elevations, row 0 first
// (y = 0). Non-zero elevations get hill terrain.
func BoardFromElevations(t *testing.T, rows [][]int) *core.Board {
	t.Helper()
	fields := make([][]core.Field, len(rows))
	for y, row := range rows {
		fields[y] = make([]core.Field, len(row))
		for x, e := range row {
			terrain := core.TerrainPlain
			if e != 0 {
				terrain = core.TerrainHill
			}
			fields[y][x] = core.Field{Elevation: e, Terrain: terrain}
		}
	}
	b, err := core.NewBoard(fields)
	require.NoError(t, err)
	return b
}

// NewTestPiece creates a piece with small valid stats at pos
func NewTestPiece(t *testing.T, pid int, name string, pos core.Vector) *core.Piece {
	t.Helper()
	p, err := core.NewPiece(core.PieceSpec{PID: pid, Name: name, HP: 10, AP: 2, Pos: &pos})
	require.NoError(t, err)
	return p
}
