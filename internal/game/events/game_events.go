package events

import (
	"github.com/mitchelldurbincs/boardgame/internal/game/core"
)

// Event type constants
const (
	TypeGameCreated  = "game.created"
	TypePieceMoved   = "piece.moved"
	TypePieceBlocked = "piece.blocked"
)

// GameCreatedEvent is published once when a game is set up
type GameCreatedEvent struct {
	BaseEvent
	Width, Height int
	NumPieces     int
}

func NewGameCreatedEvent(gameID string, width, height, numPieces int) *GameCreatedEvent {
	return &GameCreatedEvent{
		BaseEvent: newBase(TypeGameCreated, gameID),
		Width:     width,
		Height:    height,
		NumPieces: numPieces,
	}
}

// PieceMovedEvent is published after a piece steps one field
type PieceMovedEvent struct {
	BaseEvent
	PieceID     int
	From, To    core.Vector
	Direction   core.Direction
	Destination core.Vector
}

func NewPieceMovedEvent(gameID string, pid int, from, to core.Vector, d core.Direction, dest core.Vector) *PieceMovedEvent {
	return &PieceMovedEvent{
		BaseEvent:   newBase(TypePieceMoved, gameID),
		PieceID:     pid,
		From:        from,
		To:          to,
		Direction:   d,
		Destination: dest,
	}
}

// PieceBlockedEvent is published when no neighbor brings a piece closer
// to its destination, including when it already stands on it.
type PieceBlockedEvent struct {
	BaseEvent
	PieceID     int
	Pos         core.Vector
	Destination core.Vector
}

func NewPieceBlockedEvent(gameID string, pid int, pos, dest core.Vector) *PieceBlockedEvent {
	return &PieceBlockedEvent{
		BaseEvent:   newBase(TypePieceBlocked, gameID),
		PieceID:     pid,
		Pos:         pos,
		Destination: dest,
	}
}
