package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/adam-mcdaniel/capitalist-chess/pkg/common"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/engine"
)

// Console plays a game on a terminal: the human enters moves in move
// notation, the engine answers for its color.
type Console struct {
	game        economy.Game
	engine      *engine.Engine
	engineColor common.Color
	logger      *log.Logger
	in          io.Reader
	out         io.Writer
}

func NewConsole(game economy.Game, eng *engine.Engine, logger *log.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		game:        game,
		engine:      eng,
		engineColor: common.Black,
		logger:      logger,
		in:          in,
		out:         out,
	}
}

// Run loops until the game ends or the human enters "exit".
func (c *Console) Run() {
	var scanner = bufio.NewScanner(c.in)
	for {
		PrintMoves(c.out, &c.game, c.game.LegalMoves())
		PrintGame(c.out, &c.game)

		if winner, ok := c.game.Winner(); ok {
			fmt.Fprintf(c.out, "%s wins\n", winner)
			return
		}

		if c.game.WhoseTurn() == c.engineColor {
			c.logger.Println("engine is thinking...")
			var move, score = c.engine.BestMove(&c.game)
			c.logger.Println("score:", score)
			fmt.Fprintf(c.out, "Engine move: %s\n", DescribeMove(move))
			if err := c.game.Apply(move); err != nil {
				c.logger.Println("engine move rejected:", err)
				return
			}
			continue
		}

		fmt.Fprint(c.out, "Enter a move:\n> ")
		if !scanner.Scan() {
			return
		}
		var input = scanner.Text()
		if input == "exit" {
			return
		}

		var move, err = common.ParseMove(input)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid move!")
			continue
		}
		fmt.Fprintln(c.out, DescribeMove(move))
		if !c.game.IsLegalMove(move) {
			fmt.Fprintln(c.out, "Illegal move!")
			continue
		}
		if err := c.game.Apply(move); err != nil {
			fmt.Fprintln(c.out, "Illegal move!")
		}
	}
}
