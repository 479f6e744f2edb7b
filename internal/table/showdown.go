// Package table settles a hand at showdown: it evaluates the live players,
// builds the side pots and pays the winners.
package table

import (
	"errors"
	"fmt"

	"github.com/lox/pokersolver/poker"
	"github.com/lox/pokersolver/pot"
)

var ErrNoPlayers = errors.New("no players at showdown")

// Outcome is the result of settling a hand.
type Outcome struct {
	Pots      []pot.Pot
	Winnings  map[string]int
	Hands     map[string]poker.HandValue // Live players only; empty when uncontested
	Unclaimed int
}

// Showdown settles the hand. When a single player is left in the hand they
// take every chip without a showdown. Otherwise each live player's hole
// cards are combined with the board, the pots are built and the chips paid
// out to the winners' stacks.
func Showdown(players []*Player, board []poker.Card) (Outcome, error) {
	if len(players) == 0 {
		return Outcome{}, ErrNoPlayers
	}

	contributors := make([]pot.Contributor, len(players))
	var live []*Player
	for i, p := range players {
		contributors[i] = p
		if p.InHand() {
			live = append(live, p)
		}
	}

	out := Outcome{
		Pots:  pot.ComputePots(contributors),
		Hands: make(map[string]poker.HandValue),
	}

	if len(live) == 1 {
		total := pot.Total(out.Pots)
		live[0].AddChips(total)
		out.Winnings = map[string]int{live[0].Name: total}
		return out, nil
	}

	groups := [][]poker.Card{board}
	for _, p := range live {
		groups = append(groups, p.HoleCards)
	}
	if err := poker.CheckDistinct(groups...); err != nil {
		return Outcome{}, err
	}

	for _, p := range live {
		cards := append(append([]poker.Card(nil), p.HoleCards...), board...)
		hand, err := poker.Evaluate(cards)
		if err != nil {
			return Outcome{}, fmt.Errorf("evaluate %s: %w", p.Name, err)
		}
		out.Hands[p.Name] = hand
	}

	result := pot.Distribute(out.Pots, contributors, out.Hands)
	out.Winnings = result.Winnings
	out.Unclaimed = result.Unclaimed
	return out, nil
}
