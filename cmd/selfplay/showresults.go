package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
)

// matchScore tallies the running match from engine A's point of view,
// including how each game ended.
type matchScore struct {
	wins, losses, draws int
	causes              map[string]int
}

func (s *matchScore) record(res gameResult) {
	switch {
	case res.result == gameResultDraw:
		s.draws++
	case res.result == gameResultWhiteWins && res.gameInfo.engineAIsWhite,
		res.result == gameResultBlackWins && !res.gameInfo.engineAIsWhite:
		s.wins++
	default:
		s.losses++
	}
	if s.causes == nil {
		s.causes = make(map[string]int)
	}
	s.causes[terminationCause(res.comment)]++
}

// terminationCause collapses the per-game comment to a tally key; a
// forfeit comment carries the offending move, which would fragment the
// tally.
func terminationCause(comment string) string {
	if strings.HasPrefix(comment, "illegal move") {
		return "forfeit"
	}
	return comment
}

func (s *matchScore) games() int {
	return s.wins + s.losses + s.draws
}

func (s *matchScore) winFraction() float64 {
	return (float64(s.wins) + 0.5*float64(s.draws)) / float64(s.games())
}

func (s *matchScore) eloDifference() float64 {
	return -math.Log(1/s.winFraction()-1) * 400 / math.Ln10
}

// likelihoodOfSuperiority is the chance that engine A is genuinely the
// stronger player given the decisive games so far.
func (s *matchScore) likelihoodOfSuperiority() float64 {
	return 0.5 + 0.5*math.Erf(float64(s.wins-s.losses)/math.Sqrt(2*float64(s.wins+s.losses)))
}

// causeSummary lists the termination causes with counts, sorted by name
// so the output is stable.
func (s *matchScore) causeSummary() string {
	var names = make([]string, 0, len(s.causes))
	for name := range s.causes {
		names = append(names, name)
	}
	sort.Strings(names)
	var parts = make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%v x%v", name, s.causes[name])
	}
	return strings.Join(parts, ", ")
}

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) error {
	var score matchScore
	for res := range gameResults {
		score.record(res)
		log.Printf("Finished game %v: %v {%v}\n",
			res.gameInfo.gameNumber,
			gameResultString(res.result),
			res.comment)
		log.Printf("Score: %v - %v - %v  [%.3f] after %v games\n",
			score.wins, score.losses, score.draws,
			score.winFraction(), score.games())
		log.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			score.eloDifference(), score.likelihoodOfSuperiority()*100)
	}
	if score.games() > 0 {
		log.Printf("Endings: %v\n", score.causeSummary())
	}
	return nil
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return "1-0"
	case gameResultBlackWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
