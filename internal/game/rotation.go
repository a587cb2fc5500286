package game

// Rotation holds the fixed seating order established at session start
// (insertion order of players who joined before Start) and advances the
// judge seat circularly, skipping disconnected players.
type Rotation struct {
	seats []string
	cur   int
}

// NewRotation creates a rotation over the given seating order.
func NewRotation(seats []string) *Rotation {
	out := make([]string, len(seats))
	copy(out, seats)
	return &Rotation{seats: out, cur: -1}
}

// Seats returns a copy of the seating order.
func (r *Rotation) Seats() []string {
	out := make([]string, len(r.seats))
	copy(out, r.seats)
	return out
}

// Current returns the player id at the current judge seat, or "" before the
// first advance.
func (r *Rotation) Current() string {
	if r.cur < 0 || r.cur >= len(r.seats) {
		return ""
	}
	return r.seats[r.cur]
}

// Next advances to the next eligible seat and returns its player id. A seat
// is eligible when the connected predicate reports true for it. If a full
// circle finds no eligible seat, the session cannot continue and
// ErrNoEligibleJudge is returned.
func (r *Rotation) Next(connected func(playerID string) bool) (string, error) {
	if len(r.seats) == 0 {
		return "", ErrNoEligibleJudge
	}
	for i := 1; i <= len(r.seats); i++ {
		seat := (r.cur + i) % len(r.seats)
		if connected(r.seats[seat]) {
			r.cur = seat
			return r.seats[seat], nil
		}
	}
	return "", ErrNoEligibleJudge
}
