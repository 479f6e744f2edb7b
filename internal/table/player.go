package table

import (
	"github.com/lox/pokersolver/poker"
)

// Status is where a player stands in the current hand.
type Status uint8

const (
	Active Status = iota
	AllIn
	Folded
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case AllIn:
		return "all-in"
	case Folded:
		return "folded"
	default:
		return "unknown"
	}
}

// Player represents a player in a hand
type Player struct {
	Name      string
	Chips     int
	Committed int // Total bet in the hand
	HoleCards []poker.Card
	Status    Status
}

// NewPlayer seats a player with a stack.
func NewPlayer(name string, chips int) *Player {
	return &Player{Name: name, Chips: chips}
}

// Bet moves up to n chips from the stack into the hand and returns the
// amount actually moved. A player whose stack runs out is all-in.
func (p *Player) Bet(n int) int {
	if n <= 0 || p.Status != Active {
		return 0
	}
	n = min(n, p.Chips)
	p.Chips -= n
	p.Committed += n
	if p.Chips == 0 {
		p.Status = AllIn
	}
	return n
}

// Fold gives up the hand. Committed chips stay in the pot.
func (p *Player) Fold() {
	p.Status = Folded
}

// InHand reports whether the player can still win a pot.
func (p *Player) InHand() bool {
	return p.Status != Folded
}

func (p *Player) ID() string { return p.Name }
func (p *Player) TotalBet() int { return p.Committed }
func (p *Player) Folded() bool { return p.Status == Folded }
func (p *Player) AddChips(n int) { p.Chips += n }
