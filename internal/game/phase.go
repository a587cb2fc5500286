package game

// Phase is the phase of the current round.
type Phase string

const (
	PhaseSubmission Phase = "Submission"
	PhaseJudging    Phase = "Judging"
	PhaseResolution Phase = "Resolution"
)

func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo reports whether moving from p to target is a legal round
// transition. Resolution loops back to Submission when a new round starts.
func (p Phase) CanTransitionTo(target Phase) bool {
	switch p {
	case PhaseSubmission:
		return target == PhaseJudging
	case PhaseJudging:
		return target == PhaseResolution
	case PhaseResolution:
		return target == PhaseSubmission
	}
	return false
}

// Status is the lifecycle state of a session.
type Status string

const (
	StatusWaitingForPlayers Status = "WaitingForPlayers"
	StatusInRound           Status = "InRound"
	StatusFinished          Status = "Finished"
	StatusAborted           Status = "Aborted"
)
