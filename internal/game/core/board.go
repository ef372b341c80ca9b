package core

import (
	"fmt"

	"github.com/mitchelldurbincs/boardgame/internal/common"
)

// Field is a single grid cell: its elevation and terrain tag.
type Field struct {
	Elevation int
	Terrain   string
}

// Common terrain tags
const (
	TerrainPlain    = "plain"
	TerrainHill     = "hill"
	TerrainMountain = "mountain"
)

// Board is an immutable grid of fields indexed fields[y][x].
type Board struct {
	w, h   int
	fields [][]Field
}

// NewBoard builds a board from rows of fields. Every row must have the
// length of row 0. The rows are copied, so later changes by the caller
// do not reach the board.
func NewBoard(fields [][]Field) (*Board, error) {
	if len(fields) == 0 || len(fields[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	w := len(fields[0])
	rows := make([][]Field, len(fields))
	for y, row := range fields {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d fields, want %d: %w", y, len(row), w, ErrInconsistentRows)
		}
		rows[y] = append([]Field(nil), row...)
	}
	return &Board{w: w, h: len(fields), fields: rows}, nil
}

// MustNewBoard is NewBoard for boards built from fixed data. It panics
// on malformed input.
func MustNewBoard(fields [][]Field) *Board {
	b, err := NewBoard(fields)
	if err != nil {
		panic(err)
	}
	return b
}

// NewPlainBoard creates a w×h board of elevation-0 fields with the given terrain
func NewPlainBoard(w, h int, terrain string) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyBoard
	}
	fields := make([][]Field, h)
	for y := range fields {
		fields[y] = make([]Field, w)
		for x := range fields[y] {
			fields[y][x] = Field{Elevation: 0, Terrain: terrain}
		}
	}
	return &Board{w: w, h: h, fields: fields}, nil
}

func (b *Board) Width() int { return b.w }
func (b *Board) Height() int { return b.h }

// Size returns the board dimensions as (width, height)
func (b *Board) Size() (int, int) { return b.w, b.h }

// PosValid checks if p lies on the board
func (b *Board) PosValid(p Vector) bool {
	return p.X >= 0 && p.X < b.w && p.Y >= 0 && p.Y < b.h
}

// FieldAt returns the field at p, or ErrInvalidMove if p is off the board
func (b *Board) FieldAt(p Vector) (Field, error) {
	if !b.PosValid(p) {
		return Field{}, WrapPositionError("field lookup", p, ErrInvalidMove)
	}
	return b.fields[p.Y][p.X], nil
}

// StepCost is the cost of moving one step from pos in direction d:
// the absolute elevation difference plus one.
func (b *Board) StepCost(pos Vector, d Direction) (int, error) {
	if !b.PosValid(pos) {
		return 0, WrapPositionError("step cost", pos, ErrInvalidMove)
	}
	next, err := pos.Add(d)
	if err != nil {
		return 0, err
	}
	if !b.PosValid(next) {
		return 0, WrapPositionError("step cost "+d.String(), pos, ErrOutOfBounds)
	}
	from := b.fields[pos.Y][pos.X].Elevation
	to := b.fields[next.Y][next.X].Elevation
	return common.Abs(to-from) + 1, nil
}

// PathCostTotal sums the step costs of following dirs from start
func (b *Board) PathCostTotal(start Vector, dirs []Direction) (int, error) {
	total := 0
	pos := start
	for _, d := range dirs {
		c, err := b.StepCost(pos, d)
		if err != nil {
			return 0, err
		}
		total += c
		pos = pos.Step(d)
	}
	return total, nil
}
