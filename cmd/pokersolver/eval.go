package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokersolver/poker"
)

// EvalCmd ranks a single hand.
type EvalCmd struct {
	Cards []string `arg:"" help:"5 to 7 cards, e.g. 'AhKhQhJhTh' or 'Ah Kh Qh Jh Th 2c 3d'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	hand, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "%s %s\n", headerStyle.Render("cards"), poker.FormatCards(cards))
	fmt.Fprintf(e.out, "%s %s\n", headerStyle.Render("hand "), categoryStyle.Render(hand.String()))
	fmt.Fprintf(e.out, "%s %s\n", headerStyle.Render("best "), handStyle.Render(poker.FormatCards(hand.Cards)))
	fmt.Fprintf(e.out, "%s %d %s\n", headerStyle.Render("score"), hand.Score, dimStyle.Render("("+hand.KickerString()+")"))
	return nil
}
