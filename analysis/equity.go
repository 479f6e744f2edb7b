// Package analysis estimates hand equity by Monte Carlo sampling and turns
// it into call/fold recommendations using pot odds and expected value.
package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/pokersolver/poker"
)

// EquityResult is the outcome of an equity simulation. Rates are
// percentages of Trials and always sum to 100.
type EquityResult struct {
	Wins   int
	Ties   int
	Losses int
	Trials int

	WinRate  float64
	TieRate  float64
	LoseRate float64

	// Made counts how often hero finished with each hand category.
	Made [poker.RoyalFlush + 1]int

	Elapsed time.Duration
}

// tally holds raw outcome counts for a batch of trials.
type tally struct {
	wins   int
	ties   int
	losses int
	made   [poker.RoyalFlush + 1]int
}

func (t *tally) add(o tally) {
	t.wins += o.wins
	t.ties += o.ties
	t.losses += o.losses
	for i, n := range o.made {
		t.made[i] += n
	}
}

func (t tally) total() int {
	return t.wins + t.ties + t.losses
}

func newEquityResult(t tally, elapsed time.Duration) EquityResult {
	r := EquityResult{
		Wins:    t.wins,
		Ties:    t.ties,
		Losses:  t.losses,
		Trials:  t.total(),
		Made:    t.made,
		Elapsed: elapsed,
	}
	if r.Trials > 0 {
		n := float64(r.Trials)
		r.WinRate = float64(r.Wins) * 100 / n
		r.TieRate = float64(r.Ties) * 100 / n
		r.LoseRate = float64(r.Losses) * 100 / n
	}
	return r
}

// Equity returns the overall equity (0.0 to 1.0)
// Wins count as 1.0, ties count as 0.5
func (e EquityResult) Equity() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return (float64(e.Wins) + float64(e.Ties)*0.5) / float64(e.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	equity := e.Equity()
	n := float64(e.Trials)

	if n == 0 {
		return 0.0, 0.0
	}

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)

	// 95% confidence interval (±1.96 * SE)
	margin := 1.96 * se

	lower = math.Max(0.0, equity-margin)
	upper = math.Min(1.0, equity+margin)

	return lower, upper
}

// MadeRate returns the percentage of trials in which hero made category.
func (e EquityResult) MadeRate(category poker.HandCategory) float64 {
	if e.Trials == 0 || int(category) >= len(e.Made) {
		return 0
	}
	return float64(e.Made[category]) * 100 / float64(e.Trials)
}

// String summarises the result on one line.
func (e EquityResult) String() string {
	return fmt.Sprintf("win %.2f%% tie %.2f%% lose %.2f%% (%d trials)",
		e.WinRate, e.TieRate, e.LoseRate, e.Trials)
}
