package analysis

import (
	"context"
	"math/rand/v2"

	"github.com/lox/pokersolver/poker"
)

// simulation describes one equity spot. It is read-only once built, so
// workers share it.
type simulation struct {
	hole            [2]poker.Card
	board           []poker.Card
	dead            []poker.Card
	fixed           [][2]poker.Card
	randomOpponents int
}

func newSimulation(hole, board []poker.Card) *simulation {
	sim := &simulation{
		hole:  [2]poker.Card{hole[0], hole[1]},
		board: append([]poker.Card(nil), board...),
	}
	sim.dead = append(sim.dead, hole...)
	sim.dead = append(sim.dead, board...)
	return sim
}

// runBatch plays n trials with rng and returns their tally. The context is
// polled every few hundred trials.
func (sim *simulation) runBatch(ctx context.Context, rng *rand.Rand, n int) (tally, error) {
	var t tally
	for i := 0; i < n; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return t, err
			}
		}
		if err := sim.trial(rng, &t); err != nil {
			return t, err
		}
	}
	return t, nil
}

// trial deals one runout from a fresh deck, scores hero against every
// opponent and records the outcome in t.
func (sim *simulation) trial(rng *rand.Rand, t *tally) error {
	deck := poker.NewDeckExcluding(rng, sim.dead...)

	var seven [7]poker.Card
	seven[0], seven[1] = sim.hole[0], sim.hole[1]
	copy(seven[2:], sim.board)
	for i := 2 + len(sim.board); i < 7; i++ {
		card, err := deck.Draw()
		if err != nil {
			return err
		}
		seven[i] = card
	}
	heroScore := poker.Score7(seven)
	t.made[poker.CategoryOf(heroScore)]++

	best := uint32(0)
	score := func(a, b poker.Card) {
		seven[0], seven[1] = a, b
		if s := poker.Score7(seven); s > best {
			best = s
		}
	}
	for _, opp := range sim.fixed {
		score(opp[0], opp[1])
	}
	for i := 0; i < sim.randomOpponents; i++ {
		a, err := deck.Draw()
		if err != nil {
			return err
		}
		b, err := deck.Draw()
		if err != nil {
			return err
		}
		score(a, b)
	}

	switch {
	case heroScore > best:
		t.wins++
	case heroScore == best:
		t.ties++
	default:
		t.losses++
	}
	return nil
}
