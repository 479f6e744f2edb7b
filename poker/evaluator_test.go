package poker

import (
	"errors"
	"math/rand/v2"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvaluate(t *testing.T, s string) HandValue {
	t.Helper()
	hv, err := Evaluate(MustParseCards(s))
	require.NoError(t, err, "Evaluate(%q)", s)
	return hv
}

func ranks(rs ...Rank) []Rank { return rs }

func TestEvaluateFiveCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category HandCategory
		kickers  []Rank
	}{
		{"royal flush", "Ah Kh Qh Jh Th", RoyalFlush, ranks(Ace)},
		{"straight flush", "9s 8s 7s 6s 5s", StraightFlush, ranks(Nine)},
		{"steel wheel", "Ad 2d 3d 4d 5d", StraightFlush, ranks(Five)},
		{"quads", "Qc Qd Qh Qs 3c", FourOfAKind, ranks(Queen, Three)},
		{"full house", "Kc Kd Kh 5s 5c", FullHouse, ranks(King, Five)},
		{"flush", "Ac Jc 9c 4c 2c", Flush, ranks(Ace, Jack, Nine, Four, Two)},
		{"straight", "Tc 9d 8h 7s 6c", Straight, ranks(Ten)},
		{"broadway", "Ac Kd Qh Js Tc", Straight, ranks(Ace)},
		{"wheel", "Ah 2c 3d 4s 5h", Straight, ranks(Five)},
		{"trips", "7c 7d 7h Ks 2c", ThreeOfAKind, ranks(Seven, King, Two)},
		{"two pair", "5c 5d Jh Js Ac", TwoPair, ranks(Jack, Five, Ace)},
		{"pair", "8c 8d Ah 4s 2c", Pair, ranks(Eight, Ace, Four, Two)},
		{"high card", "Ac Qd 9h 6s 3c", HighCard, ranks(Ace, Queen, Nine, Six, Three)},
		{"no wrap straight", "Qc Kd Ah 2s 3c", HighCard, ranks(Ace, King, Queen, Three, Two)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hv, err := EvaluateFive(MustParseCards(tc.cards))
			require.NoError(t, err)
			assert.Equal(t, tc.category, hv.Category)
			assert.Equal(t, tc.kickers, hv.Kickers)
			assert.Len(t, hv.Cards, 5)
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()
	// One representative per category, weakest first. Each is chosen to be
	// the strongest hand of its category so that crossing a category boundary
	// is always tested against the worst hand of the next one.
	weakestFirst := []struct {
		best  string
		worst string
	}{
		{"Ac Kd Qh Js 9c", "7c 5d 4h 3s 2c"},
		{"Ac Ad Kh Qs Jc", "2c 2d 5h 4s 3c"},
		{"Ac Ad Kh Ks Qc", "3c 3d 2h 2s 4c"},
		{"Ac Ad Ah Ks Qc", "2c 2d 2h 4s 3c"},
		{"Ac Kd Qh Js Tc", "Ac 2d 3h 4s 5c"},
		{"Ac Kc Qc Jc 9c", "7d 5d 4d 3d 2d"},
		{"Ac Ad Ah Ks Kc", "2c 2d 2h 3s 3c"},
		{"Ac Ad Ah As Kc", "2c 2d 2h 2s 3c"},
		{"Kh Qh Jh Th 9h", "Ah 2h 3h 4h 5h"},
		{"As Ks Qs Js Ts", "Ah Kh Qh Jh Th"},
	}

	for i := 1; i < len(weakestFirst); i++ {
		lowerBest := mustEvaluate(t, weakestFirst[i-1].best)
		upperWorst := mustEvaluate(t, weakestFirst[i].worst)
		assert.Equal(t, HandCategory(i), upperWorst.Category, "%s", weakestFirst[i].worst)
		assert.Equal(t, HandCategory(i-1), lowerBest.Category, "%s", weakestFirst[i-1].best)
		assert.Greater(t, upperWorst.Score, lowerBest.Score,
			"%s should beat %s", upperWorst, lowerBest)
	}
}

func TestRoyalFlushBeatsFullHouse(t *testing.T) {
	t.Parallel()
	royal := mustEvaluate(t, "Ah Kh Qh Jh Th")
	fullHouse := mustEvaluate(t, "Ac Ad As Kc Kd")

	assert.Equal(t, RoyalFlush, royal.Category)
	assert.Greater(t, royal.Score, fullHouse.Score)
	assert.Equal(t, 1, Compare(royal, fullHouse))
	assert.Equal(t, -1, Compare(fullHouse, royal))
	assert.True(t, royal.Beats(fullHouse))
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"Ah Kh Qh Jh Th", "9c 9d 9h 4s 4d", "2c 5d 9h Js Kc"} {
		hv := mustEvaluate(t, s)
		assert.Equal(t, hv.Category, CategoryOf(hv.Score), s)
	}
}

func TestWheel(t *testing.T) {
	t.Parallel()
	wheel := mustEvaluate(t, "Ah 2c 3d 4s 5h")
	assert.Equal(t, Straight, wheel.Category)
	assert.Equal(t, []Rank{Five}, wheel.Kickers)

	sixHigh := mustEvaluate(t, "6h 2c 3d 4s 5h")
	assert.Equal(t, 1, Compare(sixHigh, wheel), "six-high straight beats the wheel")

	steelWheel := mustEvaluate(t, "Ah 2h 3h 4h 5h")
	assert.Equal(t, StraightFlush, steelWheel.Category)
	assert.Equal(t, []Rank{Five}, steelWheel.Kickers)
}

func TestKickersDecideTies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"fifth flush card", "Ac Jc 9c 4c 3c", "Ad Jd 9d 4d 2d"},
		{"fifth high card", "Ac Jd 9c 4h 3c", "Ad Jc 9d 4s 2d"},
		{"pair kicker", "8c 8d Ah 5s 2c", "8h 8s Ad 4c 3d"},
		{"two pair kicker", "5c 5d Jh Js Kc", "5h 5s Jc Jd Qc"},
		{"quad kicker", "9c 9d 9h 9s Ac", "9c 9d 9h 9s Kc"},
		{"full house pair", "Kc Kd Kh 6s 6c", "Kc Kd Kh 5s 5c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			better := mustEvaluate(t, tc.better)
			worse := mustEvaluate(t, tc.worse)
			assert.Equal(t, better.Category, worse.Category)
			assert.Equal(t, 1, Compare(better, worse))
		})
	}

	split := mustEvaluate(t, "Ac Kd Qh Js 9c")
	same := mustEvaluate(t, "Ad Kc Qs Jh 9d")
	assert.Equal(t, 0, Compare(split, same))
	assert.Equal(t, split.Score, same.Score)
}

func TestEvaluateSevenCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category HandCategory
		kickers  []Rank
	}{
		{"two trips make a full house", "Ah Ad Ac Kh Kd Kc 2s", FullHouse, ranks(Ace, King)},
		{"trips and two pairs", "9h 9d 9c 4h 4d 3c 3s", FullHouse, ranks(Nine, Four)},
		{"three pairs keep best kicker", "Ah Ad Kc Ks 7h 7d Qc", TwoPair, ranks(Ace, King, Queen)},
		{"flush over straight", "9h 8h 7c 6h 5d 2h Ah", Flush, ranks(Ace, Nine, Eight, Six, Two)},
		{"six card straight", "4c 5d 6h 7s 8c 9d Kh", Straight, ranks(Nine)},
		{"royal among seven", "2c 3d Ah Kh Qh Jh Th", RoyalFlush, ranks(Ace)},
		{"quads kicker from board", "Qc Qd Qh Qs 3c 7d Kc", FourOfAKind, ranks(Queen, King)},
		{"wheel with extra cards", "Ac 2d 3h 4s 5c 9d Jh", Straight, ranks(Five)},
		{"six cards", "Ac Ad 7h 7s 2c Kd", TwoPair, ranks(Ace, Seven, King)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hv := mustEvaluate(t, tc.cards)
			assert.Equal(t, tc.category, hv.Category)
			assert.Equal(t, tc.kickers, hv.Kickers)
		})
	}
}

func TestEvaluateInputValidation(t *testing.T) {
	t.Parallel()

	_, err := Evaluate(MustParseCards("Ah Kh Qh Jh"))
	assert.True(t, errors.Is(err, ErrInvalidHandSize), "4 cards: %v", err)

	_, err = Evaluate(MustParseCards("Ah Kh Qh Jh Th 9h 8h 7h"))
	assert.True(t, errors.Is(err, ErrInvalidHandSize), "8 cards: %v", err)

	_, err = EvaluateFive(MustParseCards("Ah Kh Qh Jh Th 9h"))
	assert.True(t, errors.Is(err, ErrInvalidHandSize), "EvaluateFive with 6 cards: %v", err)

	_, err = EvaluateFive(nil)
	assert.True(t, errors.Is(err, ErrInvalidHandSize), "EvaluateFive with none: %v", err)

	_, err = Evaluate(MustParseCards("Ah Ah Qh Jh Th"))
	assert.True(t, errors.Is(err, ErrDuplicateCard), "duplicate: %v", err)

	_, err = Evaluate([]Card{{}, NewCard(Two, Clubs), NewCard(Three, Clubs), NewCard(Four, Clubs), NewCard(Five, Clubs)})
	assert.True(t, errors.Is(err, ErrInvalidCardFormat), "zero card: %v", err)
}

func TestHandValueString(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"Ah Kh Qh Jh Th": "Royal Flush",
		"9s 8s 7s 6s 5s": "Straight Flush, Nine high",
		"Qc Qd Qh Qs 3c": "Four of a Kind, Queens",
		"Kc Kd Kh 5s 5c": "Full House, Kings full of Fives",
		"Ac Jc 9c 4c 2c": "Flush, Ace high",
		"Ah 2c 3d 4s 5h": "Straight, Five high",
		"6c 6d 6h Ks 2c": "Three of a Kind, Sixes",
		"5c 5d Jh Js Ac": "Two Pair, Jacks and Fives",
		"8c 8d Ah 4s 2c": "Pair of Eights",
		"Ac Qd 9h 6s 3c": "High Card, Ace high",
	}
	for cards, want := range tests {
		assert.Equal(t, want, mustEvaluate(t, cards).String(), cards)
	}
}

func randomCards(rng *rand.Rand, n int) []Card {
	d := NewDeck(rng)
	cards, _ := d.Deal(n)
	return cards
}

func TestEvaluateMatchesEvaluateFive(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 2000; i++ {
		cards := randomCards(rng, 5)
		a, err := Evaluate(cards)
		require.NoError(t, err)
		b, err := EvaluateFive(cards)
		require.NoError(t, err)

		require.Equal(t, a.Category, b.Category, FormatCards(cards))
		require.Equal(t, a.Kickers, b.Kickers, FormatCards(cards))
		require.Equal(t, a.Score, b.Score, FormatCards(cards))
	}
}

func TestSevenCardScoreDominatesSubsets(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(11, 13))
	for i := 0; i < 500; i++ {
		cards := randomCards(rng, 7)
		best, err := Evaluate(cards)
		require.NoError(t, err)

		matched := false
		for skip1 := 0; skip1 < 7; skip1++ {
			for skip2 := skip1 + 1; skip2 < 7; skip2++ {
				var five []Card
				for k, c := range cards {
					if k != skip1 && k != skip2 {
						five = append(five, c)
					}
				}
				sub, err := EvaluateFive(five)
				require.NoError(t, err)
				require.GreaterOrEqual(t, best.Score, sub.Score, FormatCards(cards))
				if sub.Score == best.Score {
					matched = true
				}
			}
		}
		require.True(t, matched, "best score must come from a subset: %s", FormatCards(cards))
		require.Equal(t, best.Score, Score7([7]Card(cards)))
	}
}

func TestCompareIsStrictWeakOrdering(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(21, 34))
	hands := make([]HandValue, 150)
	for i := range hands {
		hv, err := Evaluate(randomCards(rng, 7))
		require.NoError(t, err)
		hands[i] = hv
	}

	for _, a := range hands {
		require.Equal(t, 0, Compare(a, a))
		for _, b := range hands {
			require.Equal(t, -Compare(b, a), Compare(a, b), "antisymmetry")
			for _, c := range hands[:30] {
				if Compare(a, b) > 0 && Compare(b, c) > 0 {
					require.Equal(t, 1, Compare(a, c), "transitivity")
				}
			}
		}
	}
}

// toOracle converts a card to the independent evaluator's representation,
// which uses 1 for the ace.
func toOracle(t *testing.T, c Card) ph.Card {
	t.Helper()
	r := ph.Rank(c.Rank)
	if c.Rank == Ace {
		r = ph.Rank(1)
	}
	suits := [...]ph.Suit{Clubs: ph.Club, Diamonds: ph.Diamond, Hearts: ph.Heart, Spades: ph.Spade}
	card, err := ph.MakeCard(suits[c.Suit], r)
	require.NoError(t, err)
	return card
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func TestAgreesWithIndependentEvaluator(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(99, 1))

	for i := 0; i < 3000; i++ {
		a := randomCards(rng, 7)
		b := randomCards(rng, 7)

		var oa, ob [7]ph.Card
		for k := 0; k < 7; k++ {
			oa[k] = toOracle(t, a[k])
			ob[k] = toOracle(t, b[k])
		}

		ha, err := Evaluate(a)
		require.NoError(t, err)
		hb, err := Evaluate(b)
		require.NoError(t, err)

		want := sign(int(ph.Eval7(&oa)) - int(ph.Eval7(&ob)))
		require.Equal(t, want, Compare(ha, hb), "%s (%s) vs %s (%s)",
			FormatCards(a), ha, FormatCards(b), hb)
	}
}
