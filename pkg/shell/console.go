package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
)

const (
	lightSector = "\x1b[48;5;180m"
	darkSector  = "\x1b[48;5;94m"
	resetColor  = "\x1b[0m"
)

// sectorShade alternates the background per 2x2 sector so the territory
// grid the income census runs over is visible at a glance.
func sectorShade(t common.Tile) string {
	var s = t.Sector()
	if (s.Index()/4+s.Index())%2 == 0 {
		return darkSector
	}
	return lightSector
}

// PrintGame writes the black bank, the sector-shaded board and the white
// bank, mirroring how the players face each other.
func PrintGame(w io.Writer, g *economy.Game) {
	io.WriteString(w, g.Bank(common.Black).String())
	PrintBoard(w, g.Board())
	io.WriteString(w, g.Bank(common.White).String())
}

func PrintBoard(w io.Writer, b *common.Board) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			var t = common.MakeTile(rank, file)
			io.WriteString(w, sectorShade(t))
			if piece, ok := b.PieceAt(t); ok {
				fmt.Fprintf(w, "%c ", piece.Symbol())
			} else {
				io.WriteString(w, "  ")
			}
			io.WriteString(w, resetColor)
		}
		io.WriteString(w, "\n")
	}
	io.WriteString(w, "  a b c d e f g h\n")
}

// PrintMoves lists every playable move with its market price.
func PrintMoves(w io.Writer, g *economy.Game, moves []common.Move) {
	var market = g.Market()
	for i, m := range moves {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, DescribeMove(m), market.MoveValue(m))
	}
}

// DescribeMove renders a move as a short sentence for the move listing.
func DescribeMove(m common.Move) string {
	switch m.Kind {
	case common.MoveKindFromTo:
		var s = fmt.Sprintf("move %s to %s", m.From, m.To)
		if m.Promotion != common.NoPiece {
			s += " and promote to " + m.Promotion.String()
		}
		return s
	case common.MoveKindPieceTo:
		var s = fmt.Sprintf("move %s to %s", m.Piece, m.To)
		if m.Promotion != common.NoPiece {
			s += " and promote to " + m.Promotion.String()
		}
		return s
	case common.MoveKindPurchase:
		return fmt.Sprintf("purchase %s at %s", m.Piece, m.To)
	case common.MoveKindCastling:
		return "castling " + m.Side.String()
	case common.MoveKindResign:
		return "resign"
	case common.MoveKindPass:
		return "pass"
	case common.MoveKindMany:
		var parts = make([]string, len(m.Sequence))
		for i, sub := range m.Sequence {
			parts[i] = DescribeMove(sub)
		}
		return strings.Join(parts, ", ")
	}
	return m.String()
}
