package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeHoleCards(t *testing.T) {
	t.Parallel()

	hands := map[HoleCardCategory][]string{
		CategoryPremium: {"AsAh", "KhKd", "QcQs", "JhJd", "AsKs", "AcKh"},
		CategoryStrong:  {"TcTh", "AsQs", "AcQh", "AsJs", "AdJc"},
		CategoryMedium:  {"9c9h", "8d8s", "7h7c", "KsQs", "KhJh", "QdJd", "AhTh"},
		CategoryWeak:    {"6c6h", "5d5s", "2c2h", "7h6h", "5d4d", "9s7s"},
		CategoryTrash:   {"7c2h", "9d3s", "Jh4c", "KdQc", "8h6d", "Ts2s"},
	}

	for want, list := range hands {
		for _, s := range list {
			cards := MustParseCards(s)
			assert.Equal(t, want, CategorizeHoleCards(cards[0], cards[1]), s)
			assert.Equal(t, want, CategorizeHoleCards(cards[1], cards[0]), "%s reversed", s)
		}
	}
}

func TestCategorizeHoleCardsInvalid(t *testing.T) {
	t.Parallel()

	ace := NewCard(Ace, Spades)
	assert.Equal(t, CategoryUnknown, CategorizeHoleCards(ace, ace), "same card twice")
	assert.Equal(t, CategoryUnknown, CategorizeHoleCards(ace, Card{}), "zero card")
}
