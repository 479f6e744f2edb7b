package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokersolver/internal/table"
	"github.com/lox/pokersolver/poker"
	"github.com/lox/pokersolver/pot"
)

// PotsCmd settles a hand from each player's total bet.
type PotsCmd struct {
	Players []string `name:"player" short:"p" required:"" sep:"none" help:"Player as name:bet[:folded][:cards], e.g. alice:100:AhKd or bob:50:folded"`
	Board   string   `short:"b" help:"Community board cards"`
}

func (c *PotsCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	players := make([]*table.Player, 0, len(c.Players))
	for _, arg := range c.Players {
		p, err := parsePlayer(arg)
		if err != nil {
			return err
		}
		players = append(players, p)
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}

	out, err := table.Showdown(players, board)
	if err != nil {
		return err
	}
	if out.Unclaimed > 0 {
		e.logger.Warn("Pot left unclaimed", "chips", out.Unclaimed)
	}

	displayShowdown(e.out, players, out)
	return nil
}

// parsePlayer reads name:bet[:folded][:cards].
func parsePlayer(arg string) (*table.Player, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || parts[0] == "" {
		return nil, fmt.Errorf("player %q: expected name:bet[:folded][:cards]", arg)
	}

	bet, err := strconv.Atoi(parts[1])
	if err != nil || bet < 0 {
		return nil, fmt.Errorf("player %q: invalid bet %q", arg, parts[1])
	}

	p := &table.Player{Name: parts[0], Committed: bet}
	for _, part := range parts[2:] {
		if strings.EqualFold(part, "folded") {
			p.Fold()
			continue
		}
		cards, err := parseHole(part)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", arg, err)
		}
		p.HoleCards = cards
	}
	return p, nil
}

func displayShowdown(out io.Writer, players []*table.Player, o table.Outcome) {
	fmt.Fprintf(out, "%s\n\n", headerStyle.Render(pot.Describe(o.Pots)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("bet"),
		headerStyle.Render("cards"),
		headerStyle.Render("hand"),
		headerStyle.Render("won"))
	for _, p := range players {
		hand := dimStyle.Render(p.Status.String())
		if hv, ok := o.Hands[p.Name]; ok {
			hand = categoryStyle.Render(hv.String())
		}
		won := fmt.Sprintf("%d", o.Winnings[p.Name])
		if o.Winnings[p.Name] > 0 {
			won = winStyle.Render(won)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			handStyle.Render(p.Name), p.Committed, poker.FormatCards(p.HoleCards), hand, won)
	}
	w.Flush()

	if o.Unclaimed > 0 {
		fmt.Fprintf(out, "\n%s\n", loseStyle.Render(fmt.Sprintf("%d chips unclaimed", o.Unclaimed)))
	}
}
