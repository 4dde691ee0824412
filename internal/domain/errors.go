package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPool is returned when picking from an empty pool. It means the catalog is broken.
	ErrEmptyPool = errors.New("cannot pick from an empty pool")
	// ErrInsufficientPool is matched by InsufficientPoolError.
	ErrInsufficientPool = errors.New("not enough eligible elements in pool")
	// ErrInvalidCatalog is returned when catalog data violates its invariants.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrMalformedQuestion indicates a generated question failed its candidate checks.
	ErrMalformedQuestion = errors.New("malformed question")
	// ErrTeamNotFound is returned when a team id does not resolve.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUnknownGame is returned for a game kind outside the menu.
	ErrUnknownGame = errors.New("unknown game")
	// ErrSessionNotFound is returned when a game session has not been started or was ended.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrRoundNotResolved is returned when advancing a round nobody has answered.
	ErrRoundNotResolved = errors.New("round not resolved")
	// ErrInvalidTransition is returned for a navigation action the current screen does not accept.
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// InsufficientPoolError reports how short a distractor pool was.
type InsufficientPoolError struct {
	Need int
	Have int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("%s: need %d, have %d", ErrInsufficientPool, e.Need, e.Have)
}

func (e *InsufficientPoolError) Is(target error) bool {
	return target == ErrInsufficientPool
}
