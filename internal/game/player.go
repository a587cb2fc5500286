package game

import "time"

// ConnectionState tracks a player's liveness, independent of game phase.
type ConnectionState string

const (
	StateConnected    ConnectionState = "Connected"
	StateConnecting   ConnectionState = "Connecting"
	StateDisconnected ConnectionState = "Disconnected"
)

// Player is one roster entry. Score only ever increases, and only during
// Resolution. Disconnection keeps the player on the roster with their score
// intact; it just takes them out of judge eligibility and the all-submitted
// check.
type Player struct {
	ID        string
	Name      string
	AvatarRef string
	Score     int
	State     ConnectionState
	Hand      []string // response card ids
	IsHost    bool
	JoinedAt  time.Time
}

// Connected reports whether the player currently counts as present.
func (p *Player) Connected() bool {
	return p.State == StateConnected
}

// HoldsCard reports whether the given response card is in the player's hand.
func (p *Player) HoldsCard(cardID string) bool {
	for _, id := range p.Hand {
		if id == cardID {
			return true
		}
	}
	return false
}

// removeCard takes a card out of the hand, preserving order.
func (p *Player) removeCard(cardID string) bool {
	for i, id := range p.Hand {
		if id == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// PlayerInfo is the roster view broadcast to clients. Hands stay private.
type PlayerInfo struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Score   int             `json:"score"`
	State   ConnectionState `json:"state"`
	IsHost  bool            `json:"isHost"`
	IsJudge bool            `json:"isJudge"`
}
