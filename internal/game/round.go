package game

import "time"

// Submission is one player's staged response card for a round. At most one
// per player per round; resubmitting before the phase ends replaces it.
type Submission struct {
	ID          string    `json:"id"`
	RoundNumber int       `json:"roundNumber"`
	PlayerID    string    `json:"playerId"`
	CardID      string    `json:"cardId"`
	SubmittedAt time.Time `json:"submittedAt"`
	Auto        bool      `json:"auto"` // created by the timeout/disconnect path
}

// Round is a single prompt-judge-score cycle. Rounds are archived after
// Resolution, never reused.
type Round struct {
	Number       int
	PromptCardID string
	JudgeID      string
	Phase        Phase
	Deadline     time.Time
	Submissions  map[string]*Submission // playerID -> submission
	WinnerID     string                 // set during Resolution
	WinningSubID string                 // set during Resolution
	StartedAt    time.Time
}

func newRound(number int, promptCardID, judgeID string) *Round {
	return &Round{
		Number:       number,
		PromptCardID: promptCardID,
		JudgeID:      judgeID,
		Phase:        PhaseSubmission,
		Submissions:  make(map[string]*Submission),
		StartedAt:    time.Now().UTC(),
	}
}

// submissionByID finds a submission by its id.
func (r *Round) submissionByID(subID string) *Submission {
	for _, sub := range r.Submissions {
		if sub.ID == subID {
			return sub
		}
	}
	return nil
}
