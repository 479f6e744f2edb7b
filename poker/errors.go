package poker

import "errors"

// Input validation failures. Callers match them with errors.Is; the
// returned errors usually wrap one of these with the offending input.
var (
	ErrInvalidCardFormat = errors.New("invalid card format")
	ErrInvalidHandSize   = errors.New("invalid hand size")
	ErrInvalidHoleCards  = errors.New("exactly two hole cards required")
	ErrBoardTooLarge     = errors.New("board cannot have more than 5 cards")
	ErrDeckExhausted     = errors.New("deck exhausted")
	ErrDuplicateCard     = errors.New("duplicate card")
)
