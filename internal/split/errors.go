package split

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrIndexOutOfRange     = errors.New("item index out of range")
	ErrPersonOutOfRange    = errors.New("person index out of range")
	ErrInvalidParticipants = errors.New("participant count must be at least 1")
	ErrNotReviewing        = errors.New("session is not in the review phase")
)

// ItemProblem names one line item that failed the confirm gate.
type ItemProblem struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ConfirmError rejects the review → split transition. It lists every
// offending item so the caller can highlight each one; the session is
// left unchanged.
type ConfirmError struct {
	Problems []ItemProblem `json:"problems"`
}

func (e *ConfirmError) Error() string {
	return fmt.Sprintf("%d item(s) failed confirmation", len(e.Problems))
}
