package engine

import (
	"math/rand"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
)

// MaterialEvaluator scores a game by market-priced material plus half of
// the bank-balance differential. Prices come from the game's own market,
// so a tuned market changes what the engine fights for.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Name() string {
	return "material"
}

func (MaterialEvaluator) Evaluate(g *economy.Game, color common.Color) float64 {
	var market = g.Market()
	var score float64
	for t := common.Tile(0); t < 64; t++ {
		var piece, ok = g.PieceAt(t)
		if !ok {
			continue
		}
		var value = float64(market.PieceValue(piece.Kind) * 2)
		if piece.Color == color {
			score += value
		} else {
			score -= value
		}
	}
	return score +
		float64(g.Balance(color))/2 -
		float64(g.Balance(color.Enemy()))/2
}

// RandomEvaluator plays arbitrarily. Useful as a sparring partner and
// for exercising the search without caring about move quality.
type RandomEvaluator struct{}

func (RandomEvaluator) Name() string {
	return "random"
}

func (RandomEvaluator) Evaluate(*economy.Game, common.Color) float64 {
	return rand.Float64()
}
