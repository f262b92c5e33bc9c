package engine

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
)

// DefaultDepth is how many plies the search looks ahead. The search is
// full width with no pruning, so raising it gets expensive quickly.
const DefaultDepth = 4

// Evaluator scores a game from one side's point of view, higher being
// better for that side. Implementations must be safe for concurrent use;
// the search calls Evaluate from many goroutines at once.
type Evaluator interface {
	Name() string
	Evaluate(g *economy.Game, color common.Color) float64
}

// Engine picks moves with a fixed-depth negamax search over the full
// legal-move tree, purchases included.
type Engine struct {
	eval        Evaluator
	depth       int
	concurrency int
}

func NewEngine(eval Evaluator) *Engine {
	return &Engine{eval: eval, depth: DefaultDepth}
}

func (e *Engine) SetDepth(depth int) {
	e.depth = depth
}

// SetConcurrency caps how many sibling branches search at once per node.
// Zero means unlimited; one makes the search serial, which matters when
// many engines share the machine.
func (e *Engine) SetConcurrency(n int) {
	e.concurrency = n
}

func (e *Engine) Name() string {
	return e.eval.Name()
}

// BestMove searches from the current position and returns the chosen
// move with its score. With no legal moves it falls back to a pass
// scored as low as possible.
func (e *Engine) BestMove(g *economy.Game) (common.Move, float64) {
	var score, move = e.search(g, e.depth, g.WhoseTurn(), common.Move{}, false)
	return move, score
}

// search is the negamax recursion. The evaluation perspective stays
// fixed at the root color; the per-ply negation makes the single
// maximizing routine serve both sides. Sibling branches run
// concurrently, each on its own copy of the game, and the join keeps
// the first branch in generation order among equal scores.
func (e *Engine) search(g *economy.Game, depth int, color common.Color, original common.Move, haveOriginal bool) (float64, common.Move) {
	if depth == 0 {
		return e.eval.Evaluate(g, color), original
	}

	var moves = g.LegalMoves()
	if len(moves) == 0 {
		return math.Inf(-1), common.MovePass()
	}

	var scores = make([]float64, len(moves))
	var grp errgroup.Group
	if e.concurrency > 0 {
		grp.SetLimit(e.concurrency)
	}
	for i, m := range moves {
		var i, m = i, m
		grp.Go(func() error {
			var branch = *g
			if branch.Apply(m) != nil {
				// Generator output should always apply; score a failure
				// as a branch not worth taking instead of aborting.
				scores[i] = math.Inf(-1)
				return nil
			}
			var root = original
			if !haveOriginal {
				root = m
			}
			var score, _ = e.search(&branch, depth-1, color, root, true)
			scores[i] = -score
			return nil
		})
	}
	grp.Wait()

	var bestScore = scores[0]
	var bestMove = moves[0]
	for i := 1; i < len(scores); i++ {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestMove = moves[i]
		}
	}
	return bestScore, bestMove
}
