package poker

import (
	"fmt"
	"math/rand/v2"
)

// Deck is a shuffled set of cards dealt without replacement.
type Deck struct {
	cards [52]Card // Fixed size array
	size  int
	next  int
	rng   *rand.Rand
}

// NewDeck creates a full shuffled 52-card deck with an explicit RNG.
func NewDeck(rng *rand.Rand) *Deck {
	return NewDeckExcluding(rng)
}

// NewDeckExcluding creates a shuffled deck holding every card except the
// dead ones.
func NewDeckExcluding(rng *rand.Rand, dead ...Card) *Deck {
	d := &Deck{rng: rng}
	exclude := NewCardSet(dead...)

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			if exclude.Contains(card) {
				continue
			}
			d.cards[d.size] = card
			d.size++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the undealt cards using Fisher-Yates and resets the deal
// position.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := d.size - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw deals a single card.
func (d *Deck) Draw() (Card, error) {
	if d.next >= d.size {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Deal deals n cards. Nothing is dealt if fewer than n remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > d.size {
		return nil, fmt.Errorf("%w: need %d cards, %d remaining", ErrDeckExhausted, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return d.size - d.next
}
