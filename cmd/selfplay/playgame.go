package main

import (
	"context"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

// maxHalfMoves bounds a game; two cautious engines can shuffle and pass
// forever otherwise.
const maxHalfMoves = 300

type gameResult struct {
	gameInfo gameInfo
	result   int
	comment  string
}

func playGame(
	ctx context.Context,
	engineA, engineB *engine.Engine,
	info gameInfo,
) (gameResult, error) {
	var white, black = engineA, engineB
	if !info.engineAIsWhite {
		white, black = engineB, engineA
	}

	var game = economy.NewGame(economy.DefaultMarket())
	for i := 0; i < maxHalfMoves; i++ {
		select {
		case <-ctx.Done():
			return gameResult{}, ctx.Err()
		default:
		}

		if winner, over := game.Winner(); over {
			return gameResult{info, winnerResult(winner), "resignation"}, nil
		}
		var turn = game.WhoseTurn()
		if game.Board().IsInCheckmate(turn) {
			return gameResult{info, winnerResult(turn.Enemy()), "checkmate"}, nil
		}
		if game.Board().IsStalemate() {
			return gameResult{info, gameResultDraw, "stalemate"}, nil
		}

		var eng = white
		if turn == common.Black {
			eng = black
		}
		var move, _ = eng.BestMove(&game)
		if err := game.Apply(move); err != nil {
			// An engine that cannot pay for its chosen move forfeits.
			return gameResult{info, winnerResult(turn.Enemy()), "illegal move: " + move.String()}, nil
		}
	}
	return gameResult{info, gameResultDraw, "move limit"}, nil
}

func winnerResult(c common.Color) int {
	if c == common.White {
		return gameResultWhiteWins
	}
	return gameResultBlackWins
}
