// Package pot splits the chips wagered in a hand into a main pot and side
// pots and awards each pot to the best eligible hands.
package pot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokersolver/poker"
)

// Contributor is a player as seen by the allocator.
type Contributor interface {
	ID() string
	TotalBet() int // Chips put in during the whole hand
	Folded() bool
	AddChips(n int)
}

// Pot represents a pot (main or side)
type Pot struct {
	Amount   int
	Eligible []string // IDs of players who can win this pot, in seat order
}

// Result is the outcome of Distribute.
type Result struct {
	Winnings  map[string]int
	Unclaimed int // Chips in pots nobody eligible could win
}

// ComputePots builds the main pot and side pots from each player's total
// bet. Every distinct bet level among players still in the hand starts a new
// pot; each player contributes up to that level, so a folded player's chips
// stay in play without making them eligible. The pots always add up to the
// sum of all bets.
func ComputePots(players []Contributor) []Pot {
	var tiers []int
	for _, p := range players {
		if bet := p.TotalBet(); bet > 0 && !p.Folded() && !slices.Contains(tiers, bet) {
			tiers = append(tiers, bet)
		}
	}
	slices.Sort(tiers)

	if len(tiers) == 0 {
		pot := Pot{Eligible: []string{}}
		for _, p := range players {
			pot.Amount += max(p.TotalBet(), 0)
			if !p.Folded() {
				pot.Eligible = append(pot.Eligible, p.ID())
			}
		}
		return []Pot{pot}
	}

	pots := make([]Pot, 0, len(tiers))
	prev := 0
	for _, tier := range tiers {
		pot := Pot{Eligible: []string{}}
		for _, p := range players {
			bet := max(p.TotalBet(), 0)
			pot.Amount += min(bet, tier) - min(bet, prev)
			if !p.Folded() && bet >= tier {
				pot.Eligible = append(pot.Eligible, p.ID())
			}
		}
		pots = append(pots, pot)
		prev = tier
	}

	// Folded chips above the highest live bet
	for _, p := range players {
		if bet := p.TotalBet(); p.Folded() && bet > prev {
			pots[len(pots)-1].Amount += bet - prev
		}
	}
	return pots
}

// Distribute awards every pot to the strongest hands among its eligible
// players that have not folded and have a hand in hands. Split pots are
// divided evenly; odd chips go one at a time to the winners in seat order.
// Winners are credited through AddChips and nobody else is touched.
func Distribute(pots []Pot, players []Contributor, hands map[string]poker.HandValue) Result {
	byID := make(map[string]Contributor, len(players))
	for _, p := range players {
		byID[p.ID()] = p
	}

	result := Result{Winnings: make(map[string]int)}
	for _, pot := range pots {
		if pot.Amount <= 0 {
			continue
		}

		winners := winnersOf(pot, byID, hands)
		if len(winners) == 0 {
			result.Unclaimed += pot.Amount
			continue
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, w := range winners {
			amount := share
			if i < remainder {
				amount++
			}
			byID[w].AddChips(amount)
			result.Winnings[w] += amount
		}
	}
	return result
}

// winnersOf returns the eligible contenders holding the best hand, in
// eligible order.
func winnersOf(pot Pot, players map[string]Contributor, hands map[string]poker.HandValue) []string {
	var winners []string
	var best uint32
	for _, id := range pot.Eligible {
		p, ok := players[id]
		if !ok || p.Folded() {
			continue
		}
		hand, ok := hands[id]
		if !ok {
			continue
		}
		switch {
		case len(winners) == 0 || hand.Score > best:
			best = hand.Score
			winners = append(winners[:0], id)
		case hand.Score == best:
			winners = append(winners, id)
		}
	}
	return winners
}

// Total returns the total amount in all pots
func Total(pots []Pot) int {
	total := 0
	for _, pot := range pots {
		total += pot.Amount
	}
	return total
}

// Describe lists the pots as "Main pot 150, Side pot 1: 100".
func Describe(pots []Pot) string {
	parts := make([]string, len(pots))
	for i, pot := range pots {
		if i == 0 {
			parts[i] = fmt.Sprintf("Main pot %d", pot.Amount)
		} else {
			parts[i] = fmt.Sprintf("Side pot %d: %d", i, pot.Amount)
		}
	}
	return strings.Join(parts, ", ")
}
