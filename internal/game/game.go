package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/boardgame/internal/game/core"
	"github.com/mitchelldurbincs/boardgame/internal/game/events"
)

var (
	ErrNoBoard        = errors.New("game requires a board")
	ErrDuplicatePiece = errors.New("duplicate piece id")
)

// GameConfig holds everything needed to set up a game
type GameConfig struct {
	GameID   string // generated when empty
	Board    *core.Board
	Pieces   []*core.Piece
	Logger   zerolog.Logger
	EventBus *events.EventBus // optional
}

// Game owns one board and an ordered set of pieces. Turn and History
// belong to the turn-management layer; nothing in this package advances them.
type Game struct {
	Turn    int
	History []any

	id     string
	board  *core.Board
	pieces []*core.Piece
	logger zerolog.Logger
	bus    *events.EventBus
}

// NewGame creates a game from cfg
func NewGame(cfg GameConfig) (*Game, error) {
	if cfg.Board == nil {
		return nil, ErrNoBoard
	}
	id := cfg.GameID
	if id == "" {
		id = uuid.NewString()
	}

	seen := make(map[int]bool, len(cfg.Pieces))
	for _, p := range cfg.Pieces {
		if seen[p.PID] {
			return nil, fmt.Errorf("pid %d: %w", p.PID, ErrDuplicatePiece)
		}
		seen[p.PID] = true
	}

	g := &Game{
		id:     id,
		board:  cfg.Board,
		pieces: append([]*core.Piece(nil), cfg.Pieces...),
		logger: cfg.Logger.With().Str("component", "game").Str("game_id", id).Logger(),
		bus:    cfg.EventBus,
	}

	w, h := g.board.Size()
	g.logger.Info().
		Int("width", w).
		Int("height", h).
		Int("pieces", len(g.pieces)).
		Msg("Game created")
	g.publish(events.NewGameCreatedEvent(id, w, h, len(g.pieces)))

	return g, nil
}

func (g *Game) ID() string { return g.id }
func (g *Game) Board() *core.Board { return g.board }
func (g *Game) Pieces() []*core.Piece { return g.pieces }

// Piece returns the piece with the given pid
func (g *Game) Piece(pid int) (*core.Piece, error) {
	for _, p := range g.pieces {
		if p.PID == pid {
			return p, nil
		}
	}
	return nil, fmt.Errorf("pid %d: %w", pid, core.ErrPieceNotFound)
}

// Step moves p one field toward dest. All eight directions are scanned in
// order and the on-board neighbor closest to dest is taken, but only if it
// is strictly closer than p already is. Step cost is not considered.
// It reports whether the piece moved.
func (g *Game) Step(p *core.Piece, dest core.Vector) bool {
	from := p.Pos
	dist := p.Distance(dest)
	var dir core.Direction
	found := false

	for _, d := range core.Directions {
		next := from.Step(d)
		if !g.board.PosValid(next) {
			continue
		}
		if nd := next.Distance(dest); nd < dist {
			dist = nd
			dir = d
			found = true
		}
	}

	if !found {
		g.logger.Debug().
			Int("pid", p.PID).
			Stringer("pos", from).
			Stringer("dest", dest).
			Msg("Piece cannot get closer to destination")
		g.publish(events.NewPieceBlockedEvent(g.id, p.PID, from, dest))
		return false
	}

	// dir comes from core.Directions, so Move cannot fail
	_ = p.Move(dir)
	g.logger.Debug().
		Int("pid", p.PID).
		Stringer("from", from).
		Stringer("to", p.Pos).
		Stringer("direction", dir).
		Msg("Piece moved")
	g.publish(events.NewPieceMovedEvent(g.id, p.PID, from, p.Pos, dir, dest))
	return true
}

// StepByID is Step for the piece with the given pid
func (g *Game) StepByID(pid int, dest core.Vector) (bool, error) {
	p, err := g.Piece(pid)
	if err != nil {
		return false, err
	}
	return g.Step(p, dest), nil
}

// StepToward repeats Step until the piece stops moving or maxSteps steps
// were taken. maxSteps <= 0 means no limit; the loop still ends because
// every step strictly shortens the distance. It returns the number of steps.
func (g *Game) StepToward(p *core.Piece, dest core.Vector, maxSteps int) int {
	steps := 0
	for maxSteps <= 0 || steps < maxSteps {
		if !g.Step(p, dest) {
			break
		}
		steps++
	}
	return steps
}

func (g *Game) publish(e events.Event) {
	if g.bus != nil {
		g.bus.Publish(e)
	}
}
