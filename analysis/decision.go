package analysis

import (
	"context"
	"fmt"

	"github.com/lox/pokersolver/poker"
)

// Scenario is a call-or-fold spot facing a bet.
type Scenario struct {
	Hole      []poker.Card
	Board     []poker.Card
	Pot       int // Chips in the pot before calling
	Call      int // Chips required to call
	Opponents int
	Trials    int // Zero uses the solver default
}

// DecisionResult is the recommendation for a Scenario. Equity and PotOdds
// are percentages; ExpectedValue is in chips.
type DecisionResult struct {
	Equity        float64
	PotOdds       float64
	ExpectedValue float64
	Call          bool
	Reason        string

	EquityResult EquityResult
}

// PotOdds returns the percentage of the final pot a call contributes, the
// equity needed to break even. It is 0 when there is nothing to call or no
// pot.
func PotOdds(pot, call int) float64 {
	if pot <= 0 || call <= 0 {
		return 0
	}
	return float64(call) * 100 / float64(pot+call)
}

// ExpectedValue returns the chip expectation of calling with equity in
// [0, 1]: the pot won weighted by equity less the call lost otherwise.
func ExpectedValue(equity float64, potAfterCall, call int) float64 {
	return equity*float64(potAfterCall) - (1-equity)*float64(call)
}

// AnalyzeDecision estimates equity for the scenario and recommends a call
// only when equity strictly exceeds the pot odds. Ties count as half a win.
func (s *Solver) AnalyzeDecision(ctx context.Context, sc Scenario) (DecisionResult, error) {
	if sc.Pot < 0 || sc.Call < 0 {
		return DecisionResult{}, fmt.Errorf("%w: pot %d, call %d", ErrInvalidAmount, sc.Pot, sc.Call)
	}

	eq, err := s.CalculateEquity(ctx, sc.Hole, sc.Board, sc.Opponents, sc.Trials)
	if err != nil {
		return DecisionResult{}, fmt.Errorf("calculate equity: %w", err)
	}

	result := decide(eq, sc.Pot, sc.Call)
	s.logger.Debug("Decision",
		"equity", fmt.Sprintf("%.2f%%", result.Equity),
		"pot_odds", fmt.Sprintf("%.2f%%", result.PotOdds),
		"ev", result.ExpectedValue,
		"call", result.Call)
	return result, nil
}

func decide(eq EquityResult, pot, call int) DecisionResult {
	equity := eq.WinRate + eq.TieRate/2
	odds := PotOdds(pot, call)
	ev := ExpectedValue(equity/100, pot+call, call)

	r := DecisionResult{
		Equity:        equity,
		PotOdds:       odds,
		ExpectedValue: ev,
		Call:          equity > odds,
		EquityResult:  eq,
	}
	if r.Call {
		r.Reason = fmt.Sprintf("Equity %.2f%% exceeds pot odds %.2f%%; calling is profitable long term (EV %+.2f chips)", equity, odds, ev)
	} else {
		r.Reason = fmt.Sprintf("Equity %.2f%% does not exceed pot odds %.2f%%; folding is correct long term (EV of calling %+.2f chips)", equity, odds, ev)
	}
	return r
}
