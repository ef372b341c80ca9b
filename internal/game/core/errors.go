package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove      = errors.New("invalid move: position off board")
	ErrOutOfBounds      = fmt.Errorf("step leaves the board: %w", ErrInvalidMove)
	ErrInvalidDirection = errors.New("invalid direction")
	ErrNoPath           = errors.New("no path found")
	ErrInconsistentRows = errors.New("board rows have inconsistent lengths")
	ErrEmptyBoard       = errors.New("board has no fields")
	ErrInvalidStat      = errors.New("piece stat must be a positive integer")
	ErrPieceNotFound    = errors.New("piece not found")
)

// WrapPositionError adds the failing operation and position to err.
// A nil err stays nil.
func WrapPositionError(op string, pos Vector, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s at %s: %w", op, pos, err)
}

// WrapPathError adds both endpoints of a path request to err
func WrapPathError(op string, from, to Vector, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s from %s to %s: %w", op, from, to, err)
}
