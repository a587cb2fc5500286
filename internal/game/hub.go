package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"slights/internal/catalog"
)

const (
	roomCodeLength = 5

	// finished or abandoned sessions are swept after this long
	staleSessionTimeout = 2 * time.Hour

	cleanupInterval = 10 * time.Minute
)

// roomCodeChars leaves out ambiguous characters.
const roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomManager owns all active sessions. Sessions are fully isolated from
// each other; the only shared state is the immutable catalog.
type RoomManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	logger   zerolog.Logger
	hook     func(*Session)
	done     chan struct{}
	once     sync.Once
}

// NewRoomManager creates a manager over the given catalog and starts the
// stale-session sweeper.
func NewRoomManager(cat *catalog.Catalog, logger zerolog.Logger) *RoomManager {
	rm := &RoomManager{
		sessions: make(map[string]*Session),
		catalog:  cat,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go rm.cleanupLoop()
	return rm
}

// SetSessionHook installs a function run for every newly created session,
// used to wire up the persistence boundary.
func (rm *RoomManager) SetSessionHook(hook func(*Session)) {
	rm.mu.Lock()
	rm.hook = hook
	rm.mu.Unlock()
}

// CreateSession creates a new session under a fresh room code.
func (rm *RoomManager) CreateSession(cfg SessionConfig) *Session {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code := randomCode(roomCodeLength)
	for rm.sessions[code] != nil {
		code = randomCode(roomCodeLength)
	}
	s := NewSession(code, rm.catalog, cfg, rm.logger)
	rm.sessions[code] = s
	if rm.hook != nil {
		rm.hook(s)
	}
	rm.logger.Info().Str("code", code).Msg("session created")
	return s
}

// Get returns a session by room code.
func (rm *RoomManager) Get(code string) (*Session, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	s := rm.sessions[code]
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes and closes a session.
func (rm *RoomManager) Delete(code string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if s, ok := rm.sessions[code]; ok {
		s.Close()
		delete(rm.sessions, code)
		rm.logger.Info().Str("code", code).Msg("session deleted")
	}
}

// SessionCount returns the number of live sessions.
func (rm *RoomManager) SessionCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.sessions)
}

// Close shuts down the manager and every session.
func (rm *RoomManager) Close() {
	rm.once.Do(func() { close(rm.done) })
	rm.mu.Lock()
	defer rm.mu.Unlock()
	for _, s := range rm.sessions {
		s.Close()
	}
	rm.sessions = make(map[string]*Session)
}

func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rm.done:
			return
		case <-ticker.C:
			rm.cleanupStaleSessions()
		}
	}
}

// cleanupStaleSessions removes sessions that have been terminal for a while
// (results already read) and lobbies where nobody is connected anymore.
func (rm *RoomManager) cleanupStaleSessions() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()
	for code, s := range rm.sessions {
		switch s.Status() {
		case StatusFinished, StatusAborted:
			if now.Sub(s.CreatedAt) > staleSessionTimeout {
				s.Close()
				delete(rm.sessions, code)
				rm.logger.Info().Str("code", code).Msg("stale session cleaned up")
			}
		case StatusWaitingForPlayers:
			if !s.HasConnectedPlayers() && now.Sub(s.CreatedAt) > staleSessionTimeout {
				s.Close()
				delete(rm.sessions, code)
				rm.logger.Info().Str("code", code).Msg("abandoned lobby cleaned up")
			}
		}
	}
}

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
	}
	return string(b)
}
