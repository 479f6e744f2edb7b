package poker

import (
	"fmt"
	"strings"
)

// HandCategory is the class of a five card hand, ordered weakest first.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Categories lists every category from strongest to weakest.
var Categories = []HandCategory{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// HandValue is the evaluated strength of a poker hand.
//
// Score is a single comparable value derived from Category and Kickers:
// higher scores beat lower ones and equal scores split. Each kicker takes a
// four bit slot below the category, most significant first.
type HandValue struct {
	Category HandCategory
	Kickers  []Rank // Tie-break ranks, most significant first
	Score    uint32
	Cards    []Card // The five cards making the hand, highest rank first
}

const (
	categoryShift = 20
	kickerBits    = 4
	maxKickers    = 5
)

// CategoryOf returns the category encoded in a score from Score7 or
// HandValue.Score.
func CategoryOf(score uint32) HandCategory {
	return HandCategory(score >> categoryShift)
}

// scoreOf packs a category and its kickers into a comparable score.
func scoreOf(category HandCategory, kickers []Rank) uint32 {
	score := uint32(category) << categoryShift
	shift := categoryShift - kickerBits
	for _, k := range kickers {
		score |= uint32(k) << shift
		shift -= kickerBits
	}
	return score
}

// Compare returns 1 if h beats other, -1 if other beats h and 0 for a split.
func (h HandValue) Compare(other HandValue) int {
	return Compare(h, other)
}

// Beats reports whether h is strictly stronger than other.
func (h HandValue) Beats(other HandValue) bool {
	return h.Score > other.Score
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 when they split.
func Compare(a, b HandValue) int {
	switch {
	case a.Score > b.Score:
		return 1
	case a.Score < b.Score:
		return -1
	default:
		return 0
	}
}

// String describes the hand, e.g. "Full House, Kings full of Fives".
func (h HandValue) String() string {
	k := h.Kickers
	if len(k) == 0 {
		return h.Category.String()
	}

	switch h.Category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", h.Category, k[0].Name())
	case FourOfAKind, ThreeOfAKind:
		return fmt.Sprintf("%s, %s", h.Category, k[0].Plural())
	case FullHouse:
		if len(k) < 2 {
			break
		}
		return fmt.Sprintf("Full House, %s full of %s", k[0].Plural(), k[1].Plural())
	case Flush, HighCard:
		return fmt.Sprintf("%s, %s high", h.Category, k[0].Name())
	case TwoPair:
		if len(k) < 2 {
			break
		}
		return fmt.Sprintf("Two Pair, %s and %s", k[0].Plural(), k[1].Plural())
	case Pair:
		return fmt.Sprintf("Pair of %s", k[0].Plural())
	}
	return h.Category.String()
}

// KickerString returns the kickers as rank characters, e.g. "K K 5".
func (h HandValue) KickerString() string {
	parts := make([]string, len(h.Kickers))
	for i, k := range h.Kickers {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}
