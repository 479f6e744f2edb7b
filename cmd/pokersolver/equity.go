package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lox/pokersolver/analysis"
	"github.com/lox/pokersolver/poker"
)

// EquityCmd estimates how often a hand wins.
type EquityCmd struct {
	Hole      string   `arg:"" help:"Hole cards, e.g. 'AhKd'"`
	Board     string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Opponents int      `short:"o" default:"1" help:"Number of opponents with random cards"`
	Vs        []string `sep:"none" help:"Known opponent hands, e.g. --vs QsQd --vs 9c9h (overrides --opponents)"`

	Possibilities bool `short:"P" help:"Show how often each hand category is made"`

	SolverFlags
}

func (c *EquityCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hole, err := parseHole(c.Hole)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	solver := e.newSolver(c.SolverFlags)
	var result analysis.EquityResult
	if len(c.Vs) > 0 {
		hands, err := parseHands(c.Vs)
		if err != nil {
			return err
		}
		result, err = solver.CalculateEquityVsHands(ctx, hole, board, hands, c.Trials)
		if err != nil {
			return err
		}
	} else {
		result, err = solver.CalculateEquity(ctx, hole, board, c.Opponents, c.Trials)
		if err != nil {
			return err
		}
	}

	displayEquity(e.out, hole, board, result)
	if c.Possibilities {
		fmt.Fprintln(e.out)
		displayPossibilities(e.out, result)
	}
	return nil
}

func parseHole(s string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("hole cards: %w", err)
	}
	if len(cards) != 2 {
		return nil, fmt.Errorf("hole cards: %w, got %d", poker.ErrInvalidHoleCards, len(cards))
	}
	return cards, nil
}

func parseBoard(s string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(cards) > 5 {
		return nil, fmt.Errorf("board: %w", poker.ErrBoardTooLarge)
	}
	return cards, nil
}

func parseHands(handStrings []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(handStrings))
	for i, s := range handStrings {
		hand, err := parseHole(s)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func displayEquity(out io.Writer, hole, board []poker.Card, r analysis.EquityResult) {
	if len(board) > 0 {
		fmt.Fprintf(out, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(out, "%s\n\n", poker.FormatCards(board))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("class"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("lose"),
		headerStyle.Render("equity"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		handStyle.Render(poker.FormatCards(hole)),
		categoryStyle.Render(string(poker.CategorizeHoleCards(hole[0], hole[1]))),
		winStyle.Render(fmt.Sprintf("%.2f%%", r.WinRate)),
		tieStyle.Render(fmt.Sprintf("%.2f%%", r.TieRate)),
		loseStyle.Render(fmt.Sprintf("%.2f%%", r.LoseRate)),
		fmt.Sprintf("%.2f%%", r.Equity()*100))
	w.Flush()

	lower, upper := r.ConfidenceInterval()
	fmt.Fprintf(out, "\n95%% CI %.2f%% - %.2f%%\n", lower*100, upper*100)
	fmt.Fprintf(out, "%s\n", dimStyle.Render(fmt.Sprintf("%d trials in %v", r.Trials, r.Elapsed.Truncate(time.Millisecond))))
}

func displayPossibilities(out io.Writer, r analysis.EquityResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", categoryStyle.Render("made"), headerStyle.Render("freq"))
	for _, category := range poker.Categories {
		if r.Made[category] == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", category, fmt.Sprintf("%.2f%%", r.MadeRate(category)))
	}
	w.Flush()
}
