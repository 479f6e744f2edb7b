package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

var rankNames = [...]string{
	Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six",
	Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
	Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

// String returns the single character form of the rank ("A", "T", "7").
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Name returns the rank as a word, e.g. "Queen".
func (r Rank) Name() string {
	if r < Two || r > Ace {
		return "Unknown"
	}
	return rankNames[r]
}

// Plural returns the rank as a plural word, e.g. "Sixes".
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// String returns the single character form of the suit.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card has a rank and suit in range.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Spades
}

// String returns the two character form, e.g. "Ah" or "Tc".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank.String() + c.Suit.String()
}

// Less orders cards by rank, then suit.
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

// index maps a valid card onto 0..51.
func (c Card) index() uint {
	return uint(c.Rank-Two)*4 + uint(c.Suit)
}

// ParseCard parses a two character card such as "As", "td" or "9H".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardFormat, s)
	}

	rankIdx := strings.IndexByte(rankChars, upper(s[0]))
	if rankIdx < 0 {
		return Card{}, fmt.Errorf("%w: invalid rank %q in %q", ErrInvalidCardFormat, s[0], s)
	}

	suitIdx := strings.IndexByte(suitChars, lower(s[1]))
	if suitIdx < 0 {
		return Card{}, fmt.Errorf("%w: invalid suit %q in %q", ErrInvalidCardFormat, s[1], s)
	}

	return NewCard(Two+Rank(rankIdx), Suit(suitIdx)), nil
}

// MustParseCards parses cards and panics on error. Intended for tests and
// fixed tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// ParseCards parses a list of cards separated by spaces or commas. Tokens
// may also be concatenated, so "AhKd", "Ah Kd" and "Ah,Kd" are equivalent.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})

	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		if len(field)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCardFormat, field)
		}
		for i := 0; i < len(field); i += 2 {
			card, err := ParseCard(field[i : i+2])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// FormatCards joins the cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// CardSet is a bitset of cards, one bit per card.
type CardSet uint64

// NewCardSet creates a set from cards. Invalid cards are ignored.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set.
func (cs *CardSet) Add(card Card) {
	if card.Valid() {
		*cs |= 1 << card.index()
	}
}

// Contains reports whether the card is in the set.
func (cs CardSet) Contains(card Card) bool {
	return card.Valid() && cs&(1<<card.index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// checkCards rejects invalid and repeated cards.
func checkCards(cards []Card) error {
	var seen CardSet
	for _, card := range cards {
		if !card.Valid() {
			return fmt.Errorf("%w: rank %d suit %d", ErrInvalidCardFormat, card.Rank, card.Suit)
		}
		if seen.Contains(card) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.Add(card)
	}
	return nil
}

// CheckDistinct returns ErrDuplicateCard if any card appears more than once
// across all of the given groups, and ErrInvalidCardFormat for invalid cards.
func CheckDistinct(groups ...[]Card) error {
	var all []Card
	for _, g := range groups {
		all = append(all, g...)
	}
	return checkCards(all)
}
