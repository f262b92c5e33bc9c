package economy

import (
	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
)

// purchasableKinds in the order purchases are generated per empty tile.
var purchasableKinds = common.AllKinds

// Game is a full game of capitalist chess: the board plus one bank per
// player, all priced by a shared market. It is a value type the same way
// Board is; search branches copy the whole game.
type Game struct {
	market Market
	banks  [2]Bank
	board  common.Board
}

// NewGame starts a game in the standard arrangement and runs the first
// census for white, funding the opening move.
func NewGame(market Market) Game {
	return NewGameFromBoard(market, common.NewBoard())
}

// NewGameFromBoard starts a game from an arbitrary position. The first
// census funds the side to move.
func NewGameFromBoard(market Market, board common.Board) Game {
	var g = Game{
		market: market,
		banks:  [2]Bank{NewBank(common.White, market), NewBank(common.Black, market)},
		board:  board,
	}
	g.performCensus(board.WhoseTurn())
	return g
}

func (g *Game) Market() Market {
	return g.market
}

func (g *Game) Board() *common.Board {
	return &g.board
}

func (g *Game) Bank(c common.Color) *Bank {
	return &g.banks[c]
}

func (g *Game) Balance(c common.Color) Currency {
	return g.banks[c].Balance()
}

func (g *Game) WhoseTurn() common.Color {
	return g.board.WhoseTurn()
}

func (g *Game) PieceAt(t common.Tile) (common.Piece, bool) {
	return g.board.PieceAt(t)
}

func (g *Game) Winner() (common.Color, bool) {
	return g.board.Winner()
}

// IsLegalMove extends the board's legality check with the economic
// rules: purchases must target an empty home-sector tile while not in
// check, and every move must be affordable.
func (g *Game) IsLegalMove(m common.Move) bool {
	var turn = g.WhoseTurn()
	switch m.Kind {
	case common.MoveKindPurchase:
		if g.board.HasPieceOn(m.To) {
			return false
		}
		if !m.To.Sector().IsHomeFor(turn) {
			return false
		}
		return g.banks[turn].CanAfford(m) && !g.board.IsInCheck(turn)
	case common.MoveKindPass:
		return g.banks[turn].CanAfford(m)
	case common.MoveKindMany:
		if len(m.Sequence) == 0 {
			return false
		}
		var probe = *g
		for _, sub := range m.Sequence {
			probe.board.SetTurn(turn)
			if !probe.IsLegalMove(sub) {
				return false
			}
			probe.board.SetTurn(turn)
			if probe.applyWithoutCensus(sub) != nil {
				return false
			}
		}
		return true
	}
	return g.board.IsLegalMove(m)
}

// Apply validates the move, charges the mover's bank, performs the move
// and finally runs a census for the opponent, paying them their
// territory income for the turn they are about to take.
func (g *Game) Apply(m common.Move) error {
	var turn = g.WhoseTurn()
	if err := g.applyWithoutCensus(m); err != nil {
		return err
	}
	g.performCensus(turn.Enemy())
	return nil
}

func (g *Game) applyWithoutCensus(m common.Move) error {
	if !g.IsLegalMove(m) {
		return common.ErrIllegalMove
	}
	var turn = g.WhoseTurn()
	if err := g.banks[turn].Purchase(m); err != nil {
		return err
	}
	return g.applyToBoard(m)
}

// applyToBoard performs the move without touching the banks. Purchases
// and compound sequences are handled here because the board itself
// refuses them; everything else goes through the board.
func (g *Game) applyToBoard(m common.Move) error {
	switch m.Kind {
	case common.MoveKindPurchase:
		g.board.Spawn(m.Piece, m.To)
		g.board.SetTurn(g.WhoseTurn().Enemy())
		return nil
	case common.MoveKindMany:
		var turn = g.WhoseTurn()
		for _, sub := range m.Sequence {
			g.board.SetTurn(turn)
			if err := g.applyToBoard(sub); err != nil {
				return err
			}
		}
		g.board.SetTurn(turn.Enemy())
		return nil
	}
	return g.board.Apply(m)
}

func (g *Game) performCensus(c common.Color) {
	g.banks[c].PerformCensus(&g.board)
}

// LegalMoves enumerates every playable move: the affordable purchases
// first, tile-scan order with all six kinds per empty home tile, then
// the board moves in generation order.
func (g *Game) LegalMoves() []common.Move {
	var result = g.LegalPurchases()
	for _, m := range common.LegalMoves(&g.board) {
		result = append(result, m)
	}
	return result
}

// LegalPurchases enumerates the purchases the side to move can afford on
// its empty home-sector tiles.
func (g *Game) LegalPurchases() []common.Move {
	var result []common.Move
	for t := common.Tile(0); t < 64; t++ {
		if g.board.HasPieceOn(t) {
			continue
		}
		for _, kind := range purchasableKinds {
			var m = common.MovePurchase(kind, t)
			if g.IsLegalMove(m) {
				result = append(result, m)
			}
		}
	}
	return result
}
