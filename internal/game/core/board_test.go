package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := NewPlainBoard(w, h, TerrainPlain)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	fields := [][]Field{
		{{0, TerrainPlain}, {1, TerrainHill}, {2, TerrainHill}},
		{{0, TerrainPlain}, {0, TerrainPlain}, {5, TerrainMountain}},
	}
	b, err := NewBoard(fields)
	require.NoError(t, err)

	w, h := b.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	f, err := b.FieldAt(Vector{2, 1})
	require.NoError(t, err)
	assert.Equal(t, Field{Elevation: 5, Terrain: TerrainMountain}, f)

	// caller's slices are copied
	fields[1][2].Elevation = 99
	f, err = b.FieldAt(Vector{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 5, f.Elevation)
}

func TestNewBoard_ConstructionErrors(t *testing.T) {
	_, err := NewBoard([][]Field{
		{{}, {}, {}},
		{{}, {}},
	})
	assert.ErrorIs(t, err, ErrInconsistentRows)

	_, err = NewBoard(nil)
	assert.ErrorIs(t, err, ErrEmptyBoard)

	_, err = NewPlainBoard(0, 4, TerrainPlain)
	assert.ErrorIs(t, err, ErrEmptyBoard)

	assert.Panics(t, func() {
		MustNewBoard([][]Field{{{}}, {{}, {}}})
	})
}

func TestBoard_PosValid(t *testing.T) {
	const w, h = 5, 3
	b := plainBoard(t, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.True(t, b.PosValid(Vector{x, y}), "(%d,%d) should be valid", x, y)
		}
	}

	invalid := []Vector{{-1, 0}, {w, 0}, {0, h}, {0, -1}, {w, h}, {-5, 10}}
	for _, p := range invalid {
		assert.False(t, b.PosValid(p), "%s should be invalid", p)
	}
}

func TestBoard_FieldAtOffBoard(t *testing.T) {
	b := plainBoard(t, 2, 2)
	_, err := b.FieldAt(Vector{2, 0})
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestBoard_StepCostFlat(t *testing.T) {
	b := plainBoard(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pos := Vector{x, y}
			for _, d := range Directions {
				if !b.PosValid(pos.Step(d)) {
					continue
				}
				cost, err := b.StepCost(pos, d)
				require.NoError(t, err)
				assert.Equal(t, 1, cost)
			}
		}
	}
}

func TestBoard_StepCostElevation(t *testing.T) {
	b := MustNewBoard([][]Field{
		{{0, TerrainPlain}, {3, TerrainHill}},
		{{1, TerrainPlain}, {7, TerrainMountain}},
	})

	tests := []struct {
		name     string
		pos      Vector
		dir      Direction
		expected int
	}{
		{"climb right", Vector{0, 0}, Right, 4},
		{"climb up", Vector{0, 0}, Up, 2},
		{"climb diagonal", Vector{0, 0}, UpRight, 8},
		{"descend", Vector{1, 1}, DownLeft, 8},
		{"sideways", Vector{0, 1}, DownRight, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := b.StepCost(tt.pos, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cost)
		})
	}
}

func TestBoard_StepCostErrors(t *testing.T) {
	b := plainBoard(t, 3, 3)

	_, err := b.StepCost(Vector{0, 0}, Left)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = b.StepCost(Vector{3, 3}, Down)
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = b.StepCost(Vector{1, 1}, Direction(11))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestBoard_PathCostTotal(t *testing.T) {
	b := MustNewBoard([][]Field{
		{{0, TerrainPlain}, {2, TerrainHill}, {0, TerrainPlain}},
	})
	total, err := b.PathCostTotal(Vector{0, 0}, []Direction{Right, Right})
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	_, err = b.PathCostTotal(Vector{0, 0}, []Direction{Up})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
