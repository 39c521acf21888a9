package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/mwestby/reflex-rush/internal/game"
)

// runStats summarizes one headless bot session.
type runStats struct {
	runIndex int
	seed     uint8

	finalScore   uint8
	gameOverTick int

	correct  int
	wrong    int
	partial  int
	masked   int
	arms     int
	expiries int
}

// aggregate rolls up statistics across all runs.
type aggregate struct {
	runs          int
	minScore      uint8
	maxScore      uint8
	meanScore     float64
	totalCorrect  int
	totalWrong    int
	totalExpiries int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var reaction int
	var wrongPct float64

	flag.IntVar(&runs, "runs", 5, "number of headless bot sessions")
	flag.IntVar(&ticks, "ticks", 3600, "game deadline per session, in ticks")
	flag.Int64Var(&seedBase, "seed-base", 42, "base seed for run 1 (pattern register and bot)")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&reaction, "reaction", 30, "bot reaction time in ticks")
	flag.Float64Var(&wrongPct, "wrong-pct", 0.15, "chance a bot press targets a wrong button")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if reaction < 0 {
		fmt.Println("error: -reaction must be >= 0")
		return
	}
	if wrongPct < 0 || wrongPct > 1 {
		fmt.Println("error: -wrong-pct must be in [0,1]")
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d reaction=%d wrong_pct=%.2f\n\n",
		runs, ticks, seedBase, seedStep, reaction, wrongPct)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, ticks, reaction, wrongPct)
		all = append(all, stats)
		printRun(stats)
	}

	agg := summarize(all)
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("score: min=%d max=%d mean=%.1f\n", agg.minScore, agg.maxScore, agg.meanScore)
	fmt.Printf("presses: correct=%d wrong=%d accuracy=%.2f\n",
		agg.totalCorrect, agg.totalWrong, accuracy(agg.totalCorrect, agg.totalWrong))
	fmt.Printf("round expiries: %d\n", agg.totalExpiries)
}

// runSession plays one full session with a scripted bot: after each new
// pattern it waits its reaction time, then presses either the whole pattern
// or a deliberately wrong button.
func runSession(index int, seed int64, ticks, reaction int, wrongPct float64) runStats {
	tb := game.NewTestBench(
		game.WithSeed(uint8(seed)|1),
		game.WithGameDeadline(ticks),
	)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic bot

	for tb.Controller.Mode() == game.ModePlaying {
		tb.RunTicks(reaction)
		if tb.Controller.Mode() != game.ModePlaying {
			break
		}
		target := uint8(tb.Controller.Pattern())
		if rng.Float64() < wrongPct {
			tb.PressButtons(wrongButton(rng, target))
		} else {
			tb.PressButtons(target)
		}
	}

	rep := game.NewSessionReporter(0)
	rep.Collect(tb.Controller, tb.Log)
	snap := rep.Latest()
	return runStats{
		runIndex:     index,
		seed:         uint8(seed) | 1,
		finalScore:   tb.Controller.Score(),
		gameOverTick: tb.Controller.Tick(),
		correct:      snap.Correct,
		wrong:        snap.Wrong,
		partial:      snap.Partial,
		masked:       snap.Masked,
		arms:         snap.Arms,
		expiries:     snap.Expiries,
	}
}

// wrongButton picks a single button outside the target pattern.
func wrongButton(rng *rand.Rand, target uint8) uint8 {
	for {
		b := uint8(1) << rng.Intn(8)
		if b&target == 0 {
			return b
		}
	}
}

func printRun(s runStats) {
	fmt.Printf("run %d seed=%d: score=%d over_at=%d correct=%d wrong=%d partial=%d masked=%d arms=%d expiries=%d\n",
		s.runIndex, s.seed, s.finalScore, s.gameOverTick,
		s.correct, s.wrong, s.partial, s.masked, s.arms, s.expiries)
}

// summarize rolls per-run stats into an aggregate.
func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	if len(all) == 0 {
		return agg
	}
	agg.minScore = all[0].finalScore
	var sum int
	for _, s := range all {
		if s.finalScore < agg.minScore {
			agg.minScore = s.finalScore
		}
		if s.finalScore > agg.maxScore {
			agg.maxScore = s.finalScore
		}
		sum += int(s.finalScore)
		agg.totalCorrect += s.correct
		agg.totalWrong += s.wrong
		agg.totalExpiries += s.expiries
	}
	agg.meanScore = float64(sum) / float64(len(all))
	return agg
}

// accuracy returns correct presses as a fraction of all scoring attempts.
func accuracy(correct, wrong int) float64 {
	if correct+wrong == 0 {
		return 1
	}
	return float64(correct) / float64(correct+wrong)
}
