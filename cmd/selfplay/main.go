package main

import (
	"context"
	"flag"
	"log"
)

type Config struct {
	Games       int
	Depth       int
	Concurrency int
	EvalA       string
	EvalB       string
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.IntVar(&config.Games, "games", 20, "number of games to play")
	flag.IntVar(&config.Depth, "depth", 2, "search depth in plies")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "number of games played at once")
	flag.StringVar(&config.EvalA, "evalA", "material", "evaluation function for engine A")
	flag.StringVar(&config.EvalB, "evalB", "random", "evaluation function for engine B")
	flag.Parse()

	log.Printf("%+v", config)

	var err = run(context.Background(), config)
	if err != nil {
		log.Println(err)
	}
}
