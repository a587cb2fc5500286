package game

import "time"

// EventType labels the events a session emits toward the transport layer.
type EventType string

const (
	EventRosterChanged      EventType = "ROSTER_CHANGED"
	EventPhaseChanged       EventType = "PHASE_CHANGED"
	EventSubmissionReceived EventType = "SUBMISSION_RECEIVED"
	EventJudgingStarted     EventType = "JUDGING_STARTED"
	EventRoundResolved      EventType = "ROUND_RESOLVED"
	EventGameOver           EventType = "GAME_OVER"
	EventSessionAborted     EventType = "SESSION_ABORTED"
	EventHandDealt          EventType = "HAND_DEALT"
)

// Event is a single broadcastable state change. Events carrying a PlayerID
// are delivered only to that player; all others go to the whole room.
// Delivery order matches the order commands were processed in.
type Event struct {
	Type      EventType   `json:"type"`
	SessionID string      `json:"sessionId"`
	PlayerID  string      `json:"playerId,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func newEvent(t EventType, sessionID string, payload interface{}) Event {
	return Event{Type: t, SessionID: sessionID, Payload: payload, Timestamp: time.Now().UTC()}
}

func newPlayerEvent(t EventType, sessionID, playerID string, payload interface{}) Event {
	e := newEvent(t, sessionID, payload)
	e.PlayerID = playerID
	return e
}

// RosterPayload is sent whenever membership or connection state changes.
type RosterPayload struct {
	Players  []PlayerInfo `json:"players"`
	HostID   string       `json:"hostId"`
	CanStart bool         `json:"canStart"`
}

// PhasePayload announces a phase transition with its deadline.
type PhasePayload struct {
	RoundNumber  int       `json:"roundNumber"`
	Phase        Phase     `json:"phase"`
	PromptCardID string    `json:"promptCardId"`
	JudgeID      string    `json:"judgeId"`
	Deadline     time.Time `json:"deadline"`
}

// HandPayload carries a player's private hand after dealing or replenishing.
type HandPayload struct {
	RoundNumber int      `json:"roundNumber"`
	Cards       []string `json:"cards"`
}

// SubmissionProgressPayload is broadcast as submissions come in, without
// revealing which card anyone staged.
type SubmissionProgressPayload struct {
	RoundNumber int             `json:"roundNumber"`
	Submitted   map[string]bool `json:"submitted"` // playerID -> has submitted
	Expected    int             `json:"expected"`
	Received    int             `json:"received"`
}

// RevealedSubmission is one entry on the judge's table. AuthorID stays empty
// while submissions are anonymous.
type RevealedSubmission struct {
	SubmissionID string `json:"submissionId"`
	CardID       string `json:"cardId"`
	AuthorID     string `json:"authorId,omitempty"`
}

// JudgingPayload reveals the shuffled submissions for judging.
type JudgingPayload struct {
	RoundNumber int                  `json:"roundNumber"`
	JudgeID     string               `json:"judgeId"`
	Deadline    time.Time            `json:"deadline"`
	Submissions []RevealedSubmission `json:"submissions"`
}

// ResolutionPayload announces the round winner and updated scores.
type ResolutionPayload struct {
	RoundNumber  int            `json:"roundNumber"`
	WinnerID     string         `json:"winnerId"`
	WinningSubID string         `json:"winningSubmissionId"`
	WinningCard  string         `json:"winningCardId"`
	AutoSelected bool           `json:"autoSelected"`
	Scores       map[string]int `json:"scores"`
}

// GameOverPayload is the terminal event of a completed match.
type GameOverPayload struct {
	WinnerID    string         `json:"winnerId"`
	FinalScores map[string]int `json:"finalScores"`
	RoundCount  int            `json:"roundCount"`
}

// AbortPayload is the terminal event of a session that cannot continue.
type AbortPayload struct {
	Reason string `json:"reason"`
}
