package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lox/pokersolver/analysis"
	"github.com/lox/pokersolver/poker"
)

// DecideCmd recommends calling or folding facing a bet.
type DecideCmd struct {
	Hole      string `arg:"" optional:"" help:"Hole cards, e.g. 'AhKd'"`
	Scenario  string `short:"s" help:"Named scenario from the config file"`
	Board     string `short:"b" help:"Community board cards"`
	Pot       int    `short:"p" help:"Chips in the pot before calling"`
	Call      int    `short:"c" help:"Chips required to call"`
	Opponents int    `short:"o" default:"1" help:"Number of opponents"`

	SolverFlags
}

func (c *DecideCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	sc, err := c.scenario(e)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	result, err := e.newSolver(c.SolverFlags).AnalyzeDecision(ctx, sc)
	if err != nil {
		return err
	}

	displayDecision(e.out, sc, result)
	return nil
}

// scenario builds the spot from flags, or from the config file when
// --scenario is given.
func (c *DecideCmd) scenario(e *env) (analysis.Scenario, error) {
	if c.Scenario != "" {
		named, ok := e.cfg.Scenario(c.Scenario)
		if !ok {
			return analysis.Scenario{}, fmt.Errorf("unknown scenario %q", c.Scenario)
		}
		cards, err := named.Cards()
		if err != nil {
			return analysis.Scenario{}, err
		}
		return analysis.Scenario{
			Hole:      cards.Hole,
			Board:     cards.Board,
			Pot:       named.Pot,
			Call:      named.Call,
			Opponents: named.Opponents,
			Trials:    c.Trials,
		}, nil
	}

	if c.Hole == "" {
		return analysis.Scenario{}, errors.New("hole cards or --scenario required")
	}
	hole, err := parseHole(c.Hole)
	if err != nil {
		return analysis.Scenario{}, err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return analysis.Scenario{}, err
	}
	return analysis.Scenario{
		Hole:      hole,
		Board:     board,
		Pot:       c.Pot,
		Call:      c.Call,
		Opponents: c.Opponents,
		Trials:    c.Trials,
	}, nil
}

func displayDecision(out io.Writer, sc analysis.Scenario, r analysis.DecisionResult) {
	fmt.Fprintf(out, "%s %s %s", headerStyle.Render("hand"), handStyle.Render(poker.FormatCards(sc.Hole)),
		dimStyle.Render("("+string(poker.CategorizeHoleCards(sc.Hole[0], sc.Hole[1]))+")"))
	if len(sc.Board) > 0 {
		fmt.Fprintf(out, "  %s %s", headerStyle.Render("board"), poker.FormatCards(sc.Board))
	}
	fmt.Fprintf(out, "\n%s %d to call into %d against %d\n\n", headerStyle.Render("spot"), sc.Call, sc.Pot, sc.Opponents)

	fmt.Fprintf(out, "Equity:     %.2f%%\n", r.Equity)
	fmt.Fprintf(out, "Pot odds:   %.2f%%\n", r.PotOdds)
	fmt.Fprintf(out, "EV:         %+.2f chips\n", r.ExpectedValue)

	verdict := loseStyle.Render("FOLD")
	if r.Call {
		verdict = winStyle.Render("CALL")
	}
	fmt.Fprintf(out, "Decision:   %s\n", verdict)
	fmt.Fprintf(out, "Reason:     %s\n", r.Reason)
}
