package shell

import (
	"strings"
	"testing"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
)

func TestDescribeMove(t *testing.T) {
	tests := []struct {
		move string
		want string
	}{
		{"e2e4", "move e2 to e4"},
		{"e7e8Q", "move e7 to e8 and promote to Q"},
		{"Nf3", "move N to f3"},
		{"$Qe8", "purchase Q at e8"},
		{"O-O", "castling O-O"},
		{"pass", "pass"},
		{"resign", "resign"},
		{"a3 b3", "move P to a3, move P to b3"},
	}
	for _, test := range tests {
		t.Run(test.move, func(t *testing.T) {
			m, err := common.ParseMove(test.move)
			if err != nil {
				t.Fatal(err)
			}
			if got := DescribeMove(m); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestPrintBoard(t *testing.T) {
	var board = common.NewBoard()
	var sb strings.Builder
	PrintBoard(&sb, &board)
	var out = sb.String()
	if !strings.Contains(out, "♔") || !strings.Contains(out, "♚") {
		t.Error("kings missing from the rendering")
	}
	if !strings.Contains(out, "  a b c d e f g h") {
		t.Error("file legend missing")
	}
	if strings.Count(out, "\n") != 9 {
		t.Errorf("got %d lines", strings.Count(out, "\n"))
	}
}

func TestPrintGameShowsBothBanks(t *testing.T) {
	var g = economy.NewGame(economy.DefaultMarket())
	var sb strings.Builder
	PrintGame(&sb, &g)
	var out = sb.String()
	if !strings.Contains(out, "white") || !strings.Contains(out, "black") {
		t.Error("bank headers missing")
	}
	if !strings.Contains(out, "¢40") {
		t.Error("white's opening census balance missing")
	}
}

func TestPrintMovesListsPrices(t *testing.T) {
	var g = economy.NewGame(economy.DefaultMarket())
	var moves = []common.Move{common.MovePieceTo(common.Pawn, common.Tile(16))}
	var sb strings.Builder
	PrintMoves(&sb, &g, moves)
	if got := sb.String(); got != "1. move P to a3 (¢10)\n" {
		t.Errorf("got %q", got)
	}
}
