package poker

import "fmt"

// fiveRank is the allocation-free result of ranking five cards.
type fiveRank struct {
	category HandCategory
	kickers  [maxKickers]Rank
	n        int
	score    uint32
}

// Evaluate ranks the best five card hand that can be made from 5 to 7
// cards. Every five card subset is ranked and the highest score wins.
func Evaluate(cards []Card) (HandValue, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandValue{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHandSize, len(cards))
	}
	if err := checkCards(cards); err != nil {
		return HandValue{}, err
	}

	var best fiveRank
	var bestHand [5]Card
	var five [5]Card
	n := len(cards)
	first := true

	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five = [5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						r := rankFive(&five)
						if first || r.score > best.score {
							best, bestHand = r, five
							first = false
						}
					}
				}
			}
		}
	}

	return best.value(bestHand), nil
}

// EvaluateFive ranks exactly five cards.
func EvaluateFive(cards []Card) (HandValue, error) {
	if len(cards) != 5 {
		return HandValue{}, fmt.Errorf("%w: need exactly 5 cards, got %d", ErrInvalidHandSize, len(cards))
	}
	if err := checkCards(cards); err != nil {
		return HandValue{}, err
	}

	five := [5]Card(cards)
	return rankFive(&five).value(five), nil
}

// score7 returns only the best score of exactly seven valid, distinct cards.
// It is the Monte Carlo hot path and skips validation.
func score7(cards *[7]Card) uint32 {
	var best uint32
	var five [5]Card
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						five = [5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						if s := rankFive(&five).score; s > best {
							best = s
						}
					}
				}
			}
		}
	}
	return best
}

// Score7 ranks seven distinct valid cards and returns only the score. It
// does not validate its input; use Evaluate for untrusted cards.
func Score7(cards [7]Card) uint32 {
	return score7(&cards)
}

func (r fiveRank) value(cards [5]Card) HandValue {
	sortDesc(&cards)
	kickers := make([]Rank, r.n)
	copy(kickers, r.kickers[:r.n])
	return HandValue{
		Category: r.category,
		Kickers:  kickers,
		Score:    r.score,
		Cards:    cards[:],
	}
}

type rankGroup struct {
	rank  Rank
	count int
}

// rankFive classifies five cards. Checks run strongest first and the first
// match wins.
func rankFive(cards *[5]Card) fiveRank {
	sorted := *cards
	sortDesc(&sorted)

	var r [5]Rank
	for i, c := range sorted {
		r[i] = c.Rank
	}

	flush := sorted[0].Suit == sorted[1].Suit &&
		sorted[0].Suit == sorted[2].Suit &&
		sorted[0].Suit == sorted[3].Suit &&
		sorted[0].Suit == sorted[4].Suit

	straightHigh := Rank(0)
	switch {
	case r[0]-r[1] == 1 && r[1]-r[2] == 1 && r[2]-r[3] == 1 && r[3]-r[4] == 1:
		straightHigh = r[0]
	case r[0] == Ace && r[1] == Five && r[2] == Four && r[3] == Three && r[4] == Two:
		straightHigh = Five // wheel
	}
	straight := straightHigh != 0

	if flush && straight {
		if straightHigh == Ace {
			return newFiveRank(RoyalFlush, Ace)
		}
		return newFiveRank(StraightFlush, straightHigh)
	}

	// Group equal ranks; ranks are already descending so a stable sort by
	// count keeps higher ranks first within the same count.
	var groups [5]rankGroup
	ng := 0
	for i := 0; i < 5; i++ {
		if ng > 0 && groups[ng-1].rank == r[i] {
			groups[ng-1].count++
			continue
		}
		groups[ng] = rankGroup{rank: r[i], count: 1}
		ng++
	}
	for i := 1; i < ng; i++ {
		g := groups[i]
		j := i - 1
		for j >= 0 && groups[j].count < g.count {
			groups[j+1] = groups[j]
			j--
		}
		groups[j+1] = g
	}

	switch {
	case groups[0].count == 4:
		return newFiveRank(FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return newFiveRank(FullHouse, groups[0].rank, groups[1].rank)
	case flush:
		return newFiveRank(Flush, r[:]...)
	case straight:
		return newFiveRank(Straight, straightHigh)
	case groups[0].count == 3:
		return newFiveRank(ThreeOfAKind, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return newFiveRank(TwoPair, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return newFiveRank(Pair, groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank)
	default:
		return newFiveRank(HighCard, r[:]...)
	}
}

func newFiveRank(category HandCategory, kickers ...Rank) fiveRank {
	fr := fiveRank{category: category, n: len(kickers)}
	copy(fr.kickers[:], kickers)
	fr.score = scoreOf(category, kickers)
	return fr
}

// sortDesc sorts five cards by descending rank, then descending suit.
func sortDesc(cards *[5]Card) {
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		j := i - 1
		for j >= 0 && cards[j].Less(c) {
			cards[j+1] = cards[j]
			j--
		}
		cards[j+1] = c
	}
}
