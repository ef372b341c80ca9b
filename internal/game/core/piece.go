package core

import "fmt"

// PieceSpec describes a piece to create. PID, AttackRange and Pos are
// optional: zero values become pid 0, attack range 1 and (0,0).
type PieceSpec struct {
	PID         int
	Name        string
	HP          int
	AP          int
	AttackRange int
	Pos         *Vector
}

// Piece is a positioned game entity. HP, AP and AttackRange are checked
// once at construction; no operation here reads or changes them.
type Piece struct {
	PID         int
	Name        string
	HP          int
	AP          int
	AttackRange int
	Pos         Vector
}

// NewPiece validates spec and returns the piece it describes
func NewPiece(spec PieceSpec) (*Piece, error) {
	p := &Piece{
		PID:         spec.PID,
		Name:        spec.Name,
		HP:          spec.HP,
		AP:          spec.AP,
		AttackRange: spec.AttackRange,
	}
	if p.AttackRange == 0 {
		p.AttackRange = 1
	}
	if spec.Pos != nil {
		p.Pos = *spec.Pos
	}

	if p.HP <= 0 {
		return nil, fmt.Errorf("hp %d: %w", p.HP, ErrInvalidStat)
	}
	if p.AP <= 0 {
		return nil, fmt.Errorf("ap %d: %w", p.AP, ErrInvalidStat)
	}
	if p.AttackRange <= 0 {
		return nil, fmt.Errorf("attack_range %d: %w", p.AttackRange, ErrInvalidStat)
	}
	return p, nil
}

// Distance returns the Euclidean distance from the piece to pos
func (p *Piece) Distance(pos Vector) float64 {
	return pos.Sub(p.Pos).Length()
}

// Move advances the piece one step in direction d. Board bounds are not
// checked; the piece has no board, so callers validate first.
func (p *Piece) Move(d Direction) error {
	next, err := p.Pos.Add(d)
	if err != nil {
		return err
	}
	p.Pos = next
	return nil
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s#%d@%s", p.Name, p.PID, p.Pos)
}
