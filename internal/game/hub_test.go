package game

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"slights/internal/catalog"
)

func newTestManager(t *testing.T) *RoomManager {
	t.Helper()
	rm := NewRoomManager(catalog.Default(), zerolog.Nop())
	t.Cleanup(rm.Close)
	return rm
}

func TestCreateSessionAssignsUniqueCodes(t *testing.T) {
	rm := newTestManager(t)

	codes := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := rm.CreateSession(DefaultSessionConfig())
		if len(s.Code) != roomCodeLength {
			t.Fatalf("expected %d-character code, got %q", roomCodeLength, s.Code)
		}
		if codes[s.Code] {
			t.Fatalf("code %s issued twice", s.Code)
		}
		codes[s.Code] = true
	}
	if rm.SessionCount() != 50 {
		t.Fatalf("expected 50 sessions, got %d", rm.SessionCount())
	}
}

func TestGetAndDelete(t *testing.T) {
	rm := newTestManager(t)
	s := rm.CreateSession(DefaultSessionConfig())

	got, err := rm.Get(s.Code)
	if err != nil {
		t.Fatalf("should find the session: %v", err)
	}
	if got != s {
		t.Fatal("get should return the same session instance")
	}

	if _, err := rm.Get("NOPEZ"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	rm.Delete(s.Code)
	if _, err := rm.Get(s.Code); err != ErrSessionNotFound {
		t.Fatalf("deleted session should be gone, got %v", err)
	}
	if rm.SessionCount() != 0 {
		t.Fatalf("expected 0 sessions, got %d", rm.SessionCount())
	}
}

func TestSessionConfigDefaults(t *testing.T) {
	rm := newTestManager(t)

	// zero numeric fields fall back to the stock settings
	s := rm.CreateSession(SessionConfig{ScoreLimit: 3})
	cfg := s.Config()
	if cfg.ScoreLimit != 3 {
		t.Fatalf("explicit score limit should stick, got %d", cfg.ScoreLimit)
	}
	if cfg.HandSize != 7 || cfg.MaxPlayers != 8 || cfg.SubmissionSeconds != 60 || cfg.JudgingSeconds != 45 {
		t.Fatalf("unset fields should take defaults, got %+v", cfg)
	}
	if cfg.MinPlayers != 3 {
		t.Fatalf("expected default min players 3, got %d", cfg.MinPlayers)
	}
	if cfg.AnonymousSubmissions == nil || !*cfg.AnonymousSubmissions {
		t.Fatal("anonymity should default to on")
	}
}

func TestCleanupStaleSessions(t *testing.T) {
	rm := newTestManager(t)

	// a long-finished match
	cfg := DefaultSessionConfig()
	cfg.ScoreLimit = 1
	done := rm.CreateSession(cfg)
	players := joinPlayers(t, done, "ana", "ben", "cleo")
	if err := done.Start(players[0].ID); err != nil {
		t.Fatalf("should be able to start: %v", err)
	}
	playRound(t, done, players, players[1].ID)
	done.CreatedAt = time.Now().Add(-3 * time.Hour)

	// an old lobby whose only player dropped
	stale := rm.CreateSession(DefaultSessionConfig())
	solo := joinPlayers(t, stale, "solo")
	stale.MarkDisconnected(solo[0].ID)
	stale.CreatedAt = time.Now().Add(-3 * time.Hour)

	// an old lobby with someone still connected stays
	waiting := rm.CreateSession(DefaultSessionConfig())
	joinPlayers(t, waiting, "here")
	waiting.CreatedAt = time.Now().Add(-3 * time.Hour)

	rm.cleanupStaleSessions()

	if _, err := rm.Get(done.Code); err != ErrSessionNotFound {
		t.Fatal("finished session should be swept")
	}
	if _, err := rm.Get(stale.Code); err != ErrSessionNotFound {
		t.Fatal("lobby with everyone disconnected should be swept")
	}
	if _, err := rm.Get(waiting.Code); err != nil {
		t.Fatalf("lobby with a connected player should stay: %v", err)
	}
	if rm.SessionCount() != 1 {
		t.Fatalf("expected 1 surviving session, got %d", rm.SessionCount())
	}
}
