package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/adam-mcdaniel/capitalist-chess/internal/evalbuilder"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/economy"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/engine"
	"github.com/adam-mcdaniel/capitalist-chess/pkg/shell"
)

const name = "CapitalistChess"

var (
	versionName    = "dev"
	flgEval        string
	flgDepth       int
	flgConcurrency int
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.IntVar(&flgDepth, "depth", engine.DefaultDepth, "specifies search depth in plies")
	flag.IntVar(&flgConcurrency, "concurrency", 0, "caps concurrent search branches per node, 0 for unlimited")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var eng = engine.NewEngine(evalbuilder.Get(flgEval))
	eng.SetDepth(flgDepth)
	eng.SetConcurrency(flgConcurrency)

	var game = economy.NewGame(economy.DefaultMarket())
	var console = shell.NewConsole(game, eng, logger, os.Stdin, os.Stdout)
	console.Run()
}
