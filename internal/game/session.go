package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"slights/internal/catalog"
)

// SessionConfig holds the per-match settings. Zero numeric fields and a nil
// AnonymousSubmissions are replaced with defaults, so an omitted JSON field
// never flips anonymity off.
type SessionConfig struct {
	ScoreLimit           int   `json:"scoreLimit"`
	HandSize             int   `json:"handSize"`
	MinPlayers           int   `json:"minPlayers"`
	MaxPlayers           int   `json:"maxPlayers"`
	SubmissionSeconds    int   `json:"submissionTimeSeconds"`
	JudgingSeconds       int   `json:"judgingTimeSeconds"`
	ResolutionSeconds    int   `json:"resolutionTimeSeconds"`
	PingGraceSeconds     int   `json:"pingGraceSeconds"`
	PingTimeoutSeconds   int   `json:"pingTimeoutSeconds"`
	AnonymousSubmissions *bool `json:"anonymousSubmissions,omitempty"`
}

// DefaultSessionConfig returns the stock settings of the original game.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ScoreLimit:           5,
		HandSize:             7,
		MinPlayers:           3,
		MaxPlayers:           8,
		SubmissionSeconds:    60,
		JudgingSeconds:       45,
		ResolutionSeconds:    10,
		PingGraceSeconds:     10,
		PingTimeoutSeconds:   30,
		AnonymousSubmissions: boolPtr(true),
	}
}

func boolPtr(b bool) *bool { return &b }

// Merge fills c's unset fields from base. The transports use it to apply
// operator defaults before a session is created.
func (c SessionConfig) Merge(base SessionConfig) SessionConfig {
	if c.ScoreLimit <= 0 {
		c.ScoreLimit = base.ScoreLimit
	}
	if c.HandSize <= 0 {
		c.HandSize = base.HandSize
	}
	if c.MinPlayers <= 0 {
		c.MinPlayers = base.MinPlayers
	}
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = base.MaxPlayers
	}
	if c.SubmissionSeconds <= 0 {
		c.SubmissionSeconds = base.SubmissionSeconds
	}
	if c.JudgingSeconds <= 0 {
		c.JudgingSeconds = base.JudgingSeconds
	}
	if c.ResolutionSeconds <= 0 {
		c.ResolutionSeconds = base.ResolutionSeconds
	}
	if c.PingGraceSeconds <= 0 {
		c.PingGraceSeconds = base.PingGraceSeconds
	}
	if c.PingTimeoutSeconds <= 0 {
		c.PingTimeoutSeconds = base.PingTimeoutSeconds
	}
	if c.AnonymousSubmissions == nil {
		c.AnonymousSubmissions = base.AnonymousSubmissions
	}
	return c
}

func (c SessionConfig) withDefaults() SessionConfig {
	def := DefaultSessionConfig()
	if c.ScoreLimit <= 0 {
		c.ScoreLimit = def.ScoreLimit
	}
	if c.HandSize <= 0 {
		c.HandSize = def.HandSize
	}
	if c.MinPlayers <= 0 {
		c.MinPlayers = def.MinPlayers
	}
	if c.MaxPlayers <= 0 {
		c.MaxPlayers = def.MaxPlayers
	}
	if c.SubmissionSeconds <= 0 {
		c.SubmissionSeconds = def.SubmissionSeconds
	}
	if c.JudgingSeconds <= 0 {
		c.JudgingSeconds = def.JudgingSeconds
	}
	if c.PingGraceSeconds <= 0 {
		c.PingGraceSeconds = def.PingGraceSeconds
	}
	if c.PingTimeoutSeconds <= 0 {
		c.PingTimeoutSeconds = def.PingTimeoutSeconds
	}
	if c.AnonymousSubmissions == nil {
		c.AnonymousSubmissions = def.AnonymousSubmissions
	}
	// ResolutionSeconds 0 means advance to the next round immediately.
	return c
}

// ClientConn is a transport connection able to receive engine events.
type ClientConn interface {
	Send(event Event) error
	Close() error
}

// resolvedRound is the archived outcome of one round, kept for the summary.
type resolvedRound struct {
	Number        int
	PromptCardID  string
	WinnerID      string
	WinningCardID string
}

// Session owns one match. All state mutation goes through its mutex, so
// commands are applied one at a time in arrival order; a pending phase
// deadline fires as just another command and loses cleanly when a player
// action got there first.
type Session struct {
	ID        string
	Code      string
	CreatedAt time.Time

	cfg     SessionConfig
	catalog *catalog.Catalog

	mu         sync.Mutex
	players    map[string]*Player
	seating    []string // join order, fixed at Start
	rotation   *Rotation
	hostID     string
	deck       *Deck
	status     Status
	round      *Round
	roundCount int
	history    []resolvedRound
	winnerID   string
	startedAt  time.Time
	finishedAt time.Time
	phaseTimer *time.Timer

	monitor   *Monitor
	clients   map[string]ClientConn
	clientsMu sync.RWMutex
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	logger    zerolog.Logger

	// onFinished receives the summary once, best effort; the engine does not
	// depend on it succeeding.
	onFinished func(*Summary)
}

// NewSession creates a session in WaitingForPlayers.
func NewSession(code string, cat *catalog.Catalog, cfg SessionConfig, logger zerolog.Logger) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Code:      code,
		CreatedAt: time.Now().UTC(),
		cfg:       cfg.withDefaults(),
		catalog:   cat,
		players:   make(map[string]*Player),
		status:    StatusWaitingForPlayers,
		clients:   make(map[string]ClientConn),
		events:    make(chan Event, 100),
		done:      make(chan struct{}),
		logger:    logger.With().Str("code", code).Logger(),
	}
	s.monitor = NewMonitor(
		time.Duration(s.cfg.PingGraceSeconds)*time.Second,
		time.Duration(s.cfg.PingTimeoutSeconds)*time.Second,
		s.handleConnectionChange,
	)
	go s.eventLoop()
	return s
}

// Config returns the session's effective settings.
func (s *Session) Config() SessionConfig { return s.cfg }

// SetOnFinished installs the persistence callback for the final summary.
func (s *Session) SetOnFinished(fn func(*Summary)) {
	s.mu.Lock()
	s.onFinished = fn
	s.mu.Unlock()
}

// Join adds a player to the roster. Only possible before Start.
func (s *Session) Join(name, avatarRef string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return Player{}, ErrEmptyName
	}
	switch s.status {
	case StatusWaitingForPlayers:
	case StatusInRound:
		return Player{}, ErrRoomInProgress
	default:
		return Player{}, ErrSessionOver
	}
	if len(s.players) >= s.cfg.MaxPlayers {
		return Player{}, ErrRoomFull
	}

	p := &Player{
		ID:        uuid.NewString(),
		Name:      name,
		AvatarRef: avatarRef,
		State:     StateConnected,
		JoinedAt:  time.Now().UTC(),
	}
	if len(s.players) == 0 {
		p.IsHost = true
		s.hostID = p.ID
	}
	s.players[p.ID] = p
	s.seating = append(s.seating, p.ID)
	s.monitor.Track(p.ID)

	s.logger.Info().Str("playerId", p.ID).Str("name", name).Msg("player joined")
	s.queueEvent(newEvent(EventRosterChanged, s.ID, s.rosterLocked()))
	return *p, nil
}

// Start begins the match. Host only, needs MinPlayers connected players.
func (s *Session) Start(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusWaitingForPlayers:
	case StatusInRound:
		return ErrAlreadyStarted
	default:
		return ErrSessionOver
	}
	if playerID != s.hostID {
		return ErrNotHost
	}
	if s.connectedCountLocked() < s.cfg.MinPlayers {
		return ErrNotEnoughPlayers
	}
	if s.cfg.HandSize*len(s.players) > s.catalog.ResponseCount() {
		return ErrDeckExhausted
	}

	s.deck = NewDeck(s.catalog)
	for _, id := range s.seating {
		p := s.players[id]
		cards, err := s.deck.Draw(p.ID, s.cfg.HandSize)
		if err != nil {
			return err
		}
		p.Hand = cards
	}
	s.rotation = NewRotation(s.seating)
	s.status = StatusInRound
	s.startedAt = time.Now().UTC()

	s.logger.Info().Int("players", len(s.players)).Msg("session started")
	for _, p := range s.players {
		s.queueEvent(newPlayerEvent(EventHandDealt, s.ID, p.ID, HandPayload{
			RoundNumber: 1,
			Cards:       append([]string(nil), p.Hand...),
		}))
	}
	s.startRoundLocked()
	return nil
}

// SubmitCard stages a response card for the current round. Resubmitting
// before the phase ends swaps the staged card back into the hand and stages
// the new one.
func (s *Session) SubmitCard(playerID, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inPhaseLocked(PhaseSubmission); err != nil {
		return err
	}
	p, ok := s.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if playerID == s.round.JudgeID {
		return ErrJudgeCannotSubmit
	}
	if !p.Connected() {
		return ErrPlayerNotActive
	}

	if existing := s.round.Submissions[playerID]; existing != nil {
		if existing.CardID == cardID {
			return nil
		}
		if !p.HoldsCard(cardID) {
			return ErrCardNotInHand
		}
		p.Hand = append(p.Hand, existing.CardID)
		p.removeCard(cardID)
		existing.CardID = cardID
		existing.SubmittedAt = time.Now().UTC()
		existing.Auto = false
	} else {
		if !p.HoldsCard(cardID) {
			return ErrCardNotInHand
		}
		p.removeCard(cardID)
		s.round.Submissions[playerID] = &Submission{
			ID:          uuid.NewString(),
			RoundNumber: s.round.Number,
			PlayerID:    playerID,
			CardID:      cardID,
			SubmittedAt: time.Now().UTC(),
		}
	}

	s.queueEvent(newEvent(EventSubmissionReceived, s.ID, s.submissionProgressLocked()))
	s.checkSubmissionsCompleteLocked()
	return nil
}

// SelectWinner resolves the round with the judge's pick.
func (s *Session) SelectWinner(playerID, submissionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inPhaseLocked(PhaseJudging); err != nil {
		return err
	}
	if playerID != s.round.JudgeID {
		return ErrNotJudge
	}
	sub := s.round.submissionByID(submissionID)
	if sub == nil {
		return ErrSubmissionNotFound
	}
	s.resolveLocked(sub, false)
	return nil
}

// Leave removes a player before Start, or marks them disconnected once the
// match is running (score and roster entry are kept).
func (s *Session) Leave(playerID string) error {
	s.mu.Lock()
	if s.status == StatusWaitingForPlayers {
		defer s.mu.Unlock()
		p, ok := s.players[playerID]
		if !ok {
			return ErrPlayerNotFound
		}
		delete(s.players, playerID)
		for i, id := range s.seating {
			if id == playerID {
				s.seating = append(s.seating[:i], s.seating[i+1:]...)
				break
			}
		}
		s.monitor.Forget(playerID)
		if p.IsHost && len(s.seating) > 0 {
			s.hostID = s.seating[0]
			s.players[s.hostID].IsHost = true
		}
		s.logger.Info().Str("playerId", playerID).Msg("player left lobby")
		s.queueEvent(newEvent(EventRosterChanged, s.ID, s.rosterLocked()))
		return nil
	}
	_, ok := s.players[playerID]
	s.mu.Unlock()
	if !ok {
		return ErrPlayerNotFound
	}
	s.monitor.MarkDisconnected(playerID)
	return nil
}

// Touch records a liveness signal from the transport.
func (s *Session) Touch(playerID string) {
	s.monitor.Touch(playerID)
}

// MarkDisconnected reports a dropped transport connection.
func (s *Session) MarkDisconnected(playerID string) {
	s.monitor.MarkDisconnected(playerID)
}

// handleConnectionChange is the Monitor callback. Reconnection re-includes
// the player from the next evaluation on; it never reopens a completed
// phase. Disconnection fires the relevant auto path immediately instead of
// waiting for the deadline.
func (s *Session) handleConnectionChange(playerID string, state ConnectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return
	}
	if p.State == state {
		return
	}
	p.State = state
	s.logger.Info().Str("playerId", playerID).Str("state", string(state)).Msg("connection state changed")
	s.queueEvent(newEvent(EventRosterChanged, s.ID, s.rosterLocked()))

	if state != StateDisconnected || s.status != StatusInRound || s.round == nil {
		return
	}
	switch s.round.Phase {
	case PhaseSubmission:
		if playerID != s.round.JudgeID && s.round.Submissions[playerID] == nil {
			s.autoSubmitLocked(p)
		}
		s.checkSubmissionsCompleteLocked()
	case PhaseJudging:
		if playerID == s.round.JudgeID {
			s.autoSelectLocked()
		}
	}
}

// inPhaseLocked validates that the session is mid-round in the given phase.
func (s *Session) inPhaseLocked(ph Phase) error {
	switch s.status {
	case StatusInRound:
	case StatusWaitingForPlayers:
		return ErrInvalidPhase
	default:
		return ErrSessionOver
	}
	if s.round == nil || s.round.Phase != ph {
		return ErrInvalidPhase
	}
	return nil
}

// startRoundLocked opens the next round: advances the judge seat, draws a
// prompt and arms the submission deadline.
func (s *Session) startRoundLocked() {
	judge, err := s.rotation.Next(s.isConnectedLocked)
	if err != nil {
		s.abortLocked("no connected player eligible as judge")
		return
	}
	s.roundCount++
	s.round = newRound(s.roundCount, s.deck.DrawPrompt(), judge)
	s.round.Deadline = time.Now().UTC().Add(time.Duration(s.cfg.SubmissionSeconds) * time.Second)
	s.armTimerLocked(s.round.Number, PhaseSubmission, time.Until(s.round.Deadline))

	s.logger.Info().Int("round", s.round.Number).Str("judgeId", judge).Str("prompt", s.round.PromptCardID).Msg("round started")
	s.queueEvent(newEvent(EventPhaseChanged, s.ID, PhasePayload{
		RoundNumber:  s.round.Number,
		Phase:        PhaseSubmission,
		PromptCardID: s.round.PromptCardID,
		JudgeID:      judge,
		Deadline:     s.round.Deadline,
	}))
}

// armTimerLocked replaces the pending phase timer. The guard in phaseExpired
// makes a stale timer a no-op, so cancellation here is only housekeeping.
func (s *Session) armTimerLocked(roundNumber int, ph Phase, d time.Duration) {
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
	}
	s.phaseTimer = time.AfterFunc(d, func() { s.phaseExpired(roundNumber, ph) })
}

// phaseExpired is the deadline command. Whichever of player action and
// deadline is processed first wins; the loser fails the guard and does
// nothing.
func (s *Session) phaseExpired(roundNumber int, ph Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInRound || s.round == nil || s.round.Number != roundNumber || s.round.Phase != ph {
		return
	}
	s.logger.Info().Int("round", roundNumber).Str("phase", string(ph)).Msg("phase deadline elapsed")
	switch ph {
	case PhaseSubmission:
		s.autoSubmitMissingLocked()
		s.toJudgingLocked()
	case PhaseJudging:
		s.autoSelectLocked()
	case PhaseResolution:
		// pause between rounds is over
		s.startRoundLocked()
	}
}

// checkSubmissionsCompleteLocked moves to Judging once every connected
// non-judge player has a submission.
func (s *Session) checkSubmissionsCompleteLocked() {
	if s.round == nil || s.round.Phase != PhaseSubmission {
		return
	}
	for id, p := range s.players {
		if id == s.round.JudgeID || !p.Connected() {
			continue
		}
		if s.round.Submissions[id] == nil {
			return
		}
	}
	s.toJudgingLocked()
}

// autoSubmitLocked stages a uniformly random card from the player's own
// hand, the forced-participation policy for timeouts and disconnects.
func (s *Session) autoSubmitLocked(p *Player) {
	if len(p.Hand) == 0 {
		return
	}
	cardID := p.Hand[rand.Intn(len(p.Hand))]
	p.removeCard(cardID)
	s.round.Submissions[p.ID] = &Submission{
		ID:          uuid.NewString(),
		RoundNumber: s.round.Number,
		PlayerID:    p.ID,
		CardID:      cardID,
		SubmittedAt: time.Now().UTC(),
		Auto:        true,
	}
	s.logger.Info().Str("playerId", p.ID).Str("cardId", cardID).Msg("auto-submitted")
}

func (s *Session) autoSubmitMissingLocked() {
	for id, p := range s.players {
		if id == s.round.JudgeID || s.round.Submissions[id] != nil {
			continue
		}
		s.autoSubmitLocked(p)
	}
}

// toJudgingLocked reveals the submissions and arms the judging deadline. If
// the judge is gone, auto-selection fires right away.
func (s *Session) toJudgingLocked() {
	s.round.Phase = PhaseJudging
	s.round.Deadline = time.Now().UTC().Add(time.Duration(s.cfg.JudgingSeconds) * time.Second)

	if len(s.round.Submissions) == 0 {
		// nobody could submit; skip judging entirely rather than hang
		s.logger.Warn().Int("round", s.round.Number).Msg("no submissions to judge")
		s.autoSelectLocked()
		return
	}

	revealed := make([]RevealedSubmission, 0, len(s.round.Submissions))
	for _, sub := range s.round.Submissions {
		r := RevealedSubmission{SubmissionID: sub.ID, CardID: sub.CardID}
		if !*s.cfg.AnonymousSubmissions {
			r.AuthorID = sub.PlayerID
		}
		revealed = append(revealed, r)
	}
	rand.Shuffle(len(revealed), func(i, j int) { revealed[i], revealed[j] = revealed[j], revealed[i] })

	s.queueEvent(newEvent(EventJudgingStarted, s.ID, JudgingPayload{
		RoundNumber: s.round.Number,
		JudgeID:     s.round.JudgeID,
		Deadline:    s.round.Deadline,
		Submissions: revealed,
	}))
	s.queueEvent(newEvent(EventPhaseChanged, s.ID, PhasePayload{
		RoundNumber:  s.round.Number,
		Phase:        PhaseJudging,
		PromptCardID: s.round.PromptCardID,
		JudgeID:      s.round.JudgeID,
		Deadline:     s.round.Deadline,
	}))

	judge := s.players[s.round.JudgeID]
	if judge == nil || !judge.Connected() {
		s.autoSelectLocked()
		return
	}
	s.armTimerLocked(s.round.Number, PhaseJudging, time.Until(s.round.Deadline))
}

// autoSelectLocked resolves the round with a uniformly random submission.
func (s *Session) autoSelectLocked() {
	subs := make([]*Submission, 0, len(s.round.Submissions))
	for _, sub := range s.round.Submissions {
		subs = append(subs, sub)
	}
	if len(subs) == 0 {
		// nothing to score; archive the round and move on
		s.round.Phase = PhaseResolution
		s.history = append(s.history, resolvedRound{
			Number:       s.round.Number,
			PromptCardID: s.round.PromptCardID,
		})
		s.advanceAfterResolutionLocked()
		return
	}
	s.resolveLocked(subs[rand.Intn(len(subs))], true)
}

// resolveLocked awards the point, recycles the played cards, replenishes
// hands and either finishes the match or lines up the next round.
func (s *Session) resolveLocked(winning *Submission, auto bool) {
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
	}
	s.round.Phase = PhaseResolution
	s.round.WinnerID = winning.PlayerID
	s.round.WinningSubID = winning.ID

	winner := s.players[winning.PlayerID]
	winner.Score++

	for _, sub := range s.round.Submissions {
		s.deck.Discard(sub.CardID)
	}
	s.history = append(s.history, resolvedRound{
		Number:        s.round.Number,
		PromptCardID:  s.round.PromptCardID,
		WinnerID:      winning.PlayerID,
		WinningCardID: winning.CardID,
	})

	s.logger.Info().Int("round", s.round.Number).Str("winnerId", winning.PlayerID).Bool("auto", auto).Int("score", winner.Score).Msg("round resolved")
	s.queueEvent(newEvent(EventRoundResolved, s.ID, ResolutionPayload{
		RoundNumber:  s.round.Number,
		WinnerID:     winning.PlayerID,
		WinningSubID: winning.ID,
		WinningCard:  winning.CardID,
		AutoSelected: auto,
		Scores:       s.scoresLocked(),
	}))

	if winner.Score >= s.cfg.ScoreLimit {
		s.finishLocked(winner.ID)
		return
	}

	for _, p := range s.players {
		need := s.cfg.HandSize - len(p.Hand)
		if need <= 0 {
			continue
		}
		cards, err := s.deck.Draw(p.ID, need)
		if err != nil {
			s.abortLocked("response catalog exhausted")
			return
		}
		p.Hand = append(p.Hand, cards...)
		s.queueEvent(newPlayerEvent(EventHandDealt, s.ID, p.ID, HandPayload{
			RoundNumber: s.round.Number + 1,
			Cards:       append([]string(nil), p.Hand...),
		}))
	}

	s.advanceAfterResolutionLocked()
}

func (s *Session) advanceAfterResolutionLocked() {
	if s.cfg.ResolutionSeconds > 0 {
		s.armTimerLocked(s.round.Number, PhaseResolution, time.Duration(s.cfg.ResolutionSeconds)*time.Second)
		return
	}
	s.startRoundLocked()
}

func (s *Session) finishLocked(winnerID string) {
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
	}
	s.status = StatusFinished
	s.winnerID = winnerID
	s.finishedAt = time.Now().UTC()

	s.logger.Info().Str("winnerId", winnerID).Int("rounds", s.roundCount).Msg("game over")
	s.queueEvent(newEvent(EventGameOver, s.ID, GameOverPayload{
		WinnerID:    winnerID,
		FinalScores: s.scoresLocked(),
		RoundCount:  s.roundCount,
	}))

	if s.onFinished != nil {
		summary := s.summaryLocked()
		go s.onFinished(summary)
	}
	s.monitor.Close()
}

// abortLocked terminates the session deterministically when it cannot
// continue, surfacing the condition as a terminal event.
func (s *Session) abortLocked(reason string) {
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
	}
	s.status = StatusAborted
	s.finishedAt = time.Now().UTC()

	s.logger.Warn().Str("reason", reason).Msg("session aborted")
	s.queueEvent(newEvent(EventSessionAborted, s.ID, AbortPayload{Reason: reason}))
	s.monitor.Close()
}

func (s *Session) isConnectedLocked(playerID string) bool {
	p, ok := s.players[playerID]
	return ok && p.Connected()
}

func (s *Session) connectedCountLocked() int {
	n := 0
	for _, p := range s.players {
		if p.Connected() {
			n++
		}
	}
	return n
}

func (s *Session) scoresLocked() map[string]int {
	scores := make(map[string]int, len(s.players))
	for id, p := range s.players {
		scores[id] = p.Score
	}
	return scores
}

func (s *Session) rosterLocked() RosterPayload {
	players := make([]PlayerInfo, 0, len(s.players))
	for _, id := range s.seating {
		p := s.players[id]
		info := PlayerInfo{
			ID:     p.ID,
			Name:   p.Name,
			Score:  p.Score,
			State:  p.State,
			IsHost: p.IsHost,
		}
		if s.round != nil && s.round.JudgeID == p.ID {
			info.IsJudge = true
		}
		players = append(players, info)
	}
	return RosterPayload{
		Players:  players,
		HostID:   s.hostID,
		CanStart: s.status == StatusWaitingForPlayers && s.connectedCountLocked() >= s.cfg.MinPlayers,
	}
}

func (s *Session) submissionProgressLocked() SubmissionProgressPayload {
	submitted := make(map[string]bool)
	expected := 0
	for id, p := range s.players {
		if id == s.round.JudgeID {
			continue
		}
		if p.Connected() {
			expected++
		}
		submitted[id] = s.round.Submissions[id] != nil
	}
	return SubmissionProgressPayload{
		RoundNumber: s.round.Number,
		Submitted:   submitted,
		Expected:    expected,
		Received:    len(s.round.Submissions),
	}
}

// Status returns the session lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// HasConnectedPlayers reports whether anyone on the roster counts as present.
func (s *Session) HasConnectedPlayers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectedCountLocked() > 0
}

// WinnerID returns the match winner once Finished.
func (s *Session) WinnerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winnerID
}

// Roster returns the current roster view.
func (s *Session) Roster() RosterPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rosterLocked()
}

// Hand returns a copy of a player's current hand.
func (s *Session) Hand(playerID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil
	}
	return append([]string(nil), p.Hand...)
}

// Snapshot builds the personalized state a client needs after connecting or
// resuming: public session state plus the requesting player's private hand.
func (s *Session) Snapshot(playerID string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := map[string]interface{}{
		"sessionCode": s.Code,
		"status":      s.status,
		"roster":      s.rosterLocked(),
		"scores":      s.scoresLocked(),
		"config":      s.cfg,
	}
	if s.round != nil {
		state["round"] = PhasePayload{
			RoundNumber:  s.round.Number,
			Phase:        s.round.Phase,
			PromptCardID: s.round.PromptCardID,
			JudgeID:      s.round.JudgeID,
			Deadline:     s.round.Deadline,
		}
		if s.round.Phase == PhaseSubmission {
			state["submissions"] = s.submissionProgressLocked()
		}
	}
	if s.winnerID != "" {
		state["winnerId"] = s.winnerID
	}
	if p, ok := s.players[playerID]; ok {
		state["hand"] = append([]string(nil), p.Hand...)
		if s.round != nil {
			if sub := s.round.Submissions[playerID]; sub != nil {
				state["yourSubmission"] = sub
			}
		}
	}
	return state
}

// RegisterClient attaches a transport connection for a player.
func (s *Session) RegisterClient(playerID string, client ClientConn) {
	s.clientsMu.Lock()
	s.clients[playerID] = client
	s.clientsMu.Unlock()
}

// UnregisterClient detaches a player's transport connection.
func (s *Session) UnregisterClient(playerID string) {
	s.clientsMu.Lock()
	delete(s.clients, playerID)
	s.clientsMu.Unlock()
}

// queueEvent hands an event to the broadcast loop, blocking until it is
// accepted so that nothing, in particular no terminal event, is ever
// dropped. A closed session discards the event.
func (s *Session) queueEvent(event Event) {
	select {
	case s.events <- event:
	case <-s.done:
	}
}

// eventLoop fans events out to clients in the order they were queued, which
// matches the order their commands were processed in.
func (s *Session) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

func (s *Session) broadcastEvent(event Event) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	if event.PlayerID != "" {
		if client, ok := s.clients[event.PlayerID]; ok {
			if err := client.Send(event); err != nil {
				s.logger.Debug().Err(err).Str("playerId", event.PlayerID).Msg("send failed")
			}
		}
		return
	}
	for playerID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug().Err(err).Str("playerId", playerID).Msg("send failed")
		}
	}
}

// Close shuts the session down. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.monitor.Close()
		s.mu.Lock()
		if s.phaseTimer != nil {
			s.phaseTimer.Stop()
		}
		s.mu.Unlock()
		s.clientsMu.Lock()
		for _, client := range s.clients {
			client.Close()
		}
		s.clients = make(map[string]ClientConn)
		s.clientsMu.Unlock()
	})
}
