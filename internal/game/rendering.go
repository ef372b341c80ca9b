package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/boardgame/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Render draws the board with the highest row on top. Each cell shows its
// elevation, a piece as the first letter of its name, and cells on path
// as '*'. Colors are ANSI escapes and can be turned off for logs and tests.
func (g *Game) Render(path map[core.Vector]bool, color bool) string {
	w, h := g.board.Size()
	occupied := make(map[core.Vector]*core.Piece, len(g.pieces))
	for _, p := range g.pieces {
		occupied[p.Pos] = p
	}

	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ColorReset
	}

	var sb strings.Builder
	sb.Grow((w*3 + 6) * (h + 2))

	for y := h - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%3d ", y)
		for x := 0; x < w; x++ {
			pos := core.Vector{X: x, Y: y}
			switch {
			case occupied[pos] != nil:
				sb.WriteString(paint(ColorCyan, " "+pieceSymbol(occupied[pos])))
			case path[pos]:
				sb.WriteString(paint(ColorYellow, " *"))
			default:
				f, _ := g.board.FieldAt(pos)
				sb.WriteString(paint(ColorGray, fmt.Sprintf("%2d", f.Elevation)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("    ")
	for x := 0; x < w; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteString("\n")
	return sb.String()
}

// PathCells returns the set of fields visited when following dirs from
// start, excluding start itself
func PathCells(start core.Vector, dirs []core.Direction) map[core.Vector]bool {
	cells := make(map[core.Vector]bool, len(dirs))
	pos := start
	for _, d := range dirs {
		pos = pos.Step(d)
		cells[pos] = true
	}
	return cells
}

func pieceSymbol(p *core.Piece) string {
	if p.Name == "" {
		return "@"
	}
	return strings.ToUpper(p.Name[:1])
}
