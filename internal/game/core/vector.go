package core

import (
	"fmt"
	"math"
)

// Vector is an integer 2D coordinate. It is used both as an absolute
// position on a board and as a relative displacement.
type Vector struct {
	X, Y int
}

// NewVector creates a new vector with the given x and y values
func NewVector(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Length returns the Euclidean norm of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Y*v.Y))
}

// Distance returns the Euclidean distance between v and other
func (v Vector) Distance(other Vector) float64 {
	return other.Sub(v).Length()
}

// Sub returns the component-wise difference v - other
func (v Vector) Sub(other Vector) Vector {
	return Vector{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Add returns the vector one grid step away from v in direction d.
// It fails with ErrInvalidDirection if d is not one of the eight headings.
func (v Vector) Add(d Direction) (Vector, error) {
	off, err := d.Offset()
	if err != nil {
		return v, err
	}
	return Vector{X: v.X + off.X, Y: v.Y + off.Y}, nil
}

// Step is Add for directions known to be valid, such as those taken
// from Directions. It panics on an invalid direction.
func (v Vector) Step(d Direction) Vector {
	next, err := v.Add(d)
	if err != nil {
		panic(err)
	}
	return next
}

// Equal checks if two vectors are equal
func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

// String returns a string representation of the vector
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Direction is one of the eight compass headings on the grid.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// Directions lists all headings in declaration order. Every search loop
// scans this slice front to back, so on equal scores the earlier entry wins.
var Directions = [...]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// directionOffsets is indexed by Direction. Up increases Y.
var directionOffsets = [...]Vector{
	Up:        {X: 0, Y: 1},
	UpRight:   {X: 1, Y: 1},
	Right:     {X: 1, Y: 0},
	DownRight: {X: 1, Y: -1},
	Down:      {X: 0, Y: -1},
	DownLeft:  {X: -1, Y: -1},
	Left:      {X: -1, Y: 0},
	UpLeft:    {X: -1, Y: 1},
}

var directionNames = [...]string{
	Up:        "Up",
	UpRight:   "UpRight",
	Right:     "Right",
	DownRight: "DownRight",
	Down:      "Down",
	DownLeft:  "DownLeft",
	Left:      "Left",
	UpLeft:    "UpLeft",
}

// Valid reports whether d is one of the eight headings
func (d Direction) Valid() bool {
	return d >= Up && d <= UpLeft
}

// Offset returns the unit displacement for d
func (d Direction) Offset() (Vector, error) {
	if !d.Valid() {
		return Vector{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return directionOffsets[d], nil
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
