package game

import "errors"

// Engine errors. Validation and conflict errors are returned synchronously
// to the caller and never mutate session state. The fatal no-eligible-judge
// condition is not an error value; it terminates the session with a
// SessionAborted event instead.
var (
	// validation
	ErrSessionNotFound    = errors.New("session not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidPhase       = errors.New("invalid action for current phase")
	ErrAlreadyStarted     = errors.New("session already started")
	ErrSessionOver        = errors.New("session is over")
	ErrCardNotInHand      = errors.New("card is not in your hand")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrEmptyName          = errors.New("display name cannot be empty")

	// capacity
	ErrRoomFull         = errors.New("room is full")
	ErrRoomInProgress   = errors.New("room is already in progress")
	ErrNotEnoughPlayers = errors.New("not enough connected players to start")

	// state conflicts
	ErrNotHost           = errors.New("only the host can perform this action")
	ErrNotJudge          = errors.New("only the judge can select a winner")
	ErrJudgeCannotSubmit = errors.New("the judge cannot submit a card")
	ErrPlayerNotActive   = errors.New("player is not connected")

	// deck
	ErrDeckExhausted = errors.New("catalog cannot supply enough response cards")

	// rotation
	ErrNoEligibleJudge = errors.New("no connected player eligible as judge")
)
