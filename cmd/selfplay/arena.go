package main

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/adam-mcdaniel/capitalist-chess/internal/evalbuilder"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/engine"
)

type gameInfo struct {
	gameNumber     int
	engineAIsWhite bool
}

func run(ctx context.Context, config Config) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0))

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		for i := 0; i < config.Games; i++ {
			var info = gameInfo{gameNumber: i + 1, engineAIsWhite: i%2 == 0}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(ctx, gameResults)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = newArenaEngine(config.EvalA, config.Depth)
	var engineB = newArenaEngine(config.EvalB, config.Depth)
	for info := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

// newArenaEngine builds a serial engine; the arena gets its parallelism
// from playing whole games at once.
func newArenaEngine(eval string, depth int) *engine.Engine {
	var eng = engine.NewEngine(evalbuilder.Get(eval))
	eng.SetDepth(depth)
	eng.SetConcurrency(1)
	return eng
}
