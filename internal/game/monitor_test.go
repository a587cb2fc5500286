package game

import (
	"sync"
	"testing"
	"time"
)

type changeRecorder struct {
	mu      sync.Mutex
	changes []ConnectionState
}

func (r *changeRecorder) record(_ string, state ConnectionState) {
	r.mu.Lock()
	r.changes = append(r.changes, state)
	r.mu.Unlock()
}

func (r *changeRecorder) last() ConnectionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.changes) == 0 {
		return ""
	}
	return r.changes[len(r.changes)-1]
}

func TestMonitorDegradesSilentPlayers(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMonitor(200*time.Millisecond, 500*time.Millisecond, rec.record)
	defer m.Close()

	m.Track("p1")
	if m.State("p1") != StateConnected {
		t.Fatal("tracked player should start connected")
	}

	// sweeps run once a second; after the first the grace has long passed,
	// after the second the timeout has too
	time.Sleep(1200 * time.Millisecond)
	if m.State("p1") != StateConnecting {
		t.Fatalf("expected connecting after grace, got %s", m.State("p1"))
	}

	time.Sleep(time.Second)
	if m.State("p1") != StateDisconnected {
		t.Fatalf("expected disconnected after timeout, got %s", m.State("p1"))
	}
	if rec.last() != StateDisconnected {
		t.Fatal("the transition should have been reported")
	}
}

func TestMonitorTouchRestores(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMonitor(200*time.Millisecond, 500*time.Millisecond, rec.record)
	defer m.Close()

	m.Track("p1")
	time.Sleep(1200 * time.Millisecond)
	if m.State("p1") != StateConnecting {
		t.Fatalf("expected connecting, got %s", m.State("p1"))
	}

	m.Touch("p1")
	if m.State("p1") != StateConnected {
		t.Fatal("touch should restore connected immediately")
	}
	if rec.last() != StateConnected {
		t.Fatal("the restore should have been reported")
	}
}

func TestMonitorMarkDisconnectedIsImmediate(t *testing.T) {
	rec := &changeRecorder{}
	m := NewMonitor(time.Minute, time.Minute, rec.record)
	defer m.Close()

	m.Track("p1")
	m.MarkDisconnected("p1")
	if m.State("p1") != StateDisconnected {
		t.Fatal("explicit disconnect should bypass the grace window")
	}

	// repeat reports are suppressed
	m.MarkDisconnected("p1")
	rec.mu.Lock()
	n := len(rec.changes)
	rec.mu.Unlock()
	if n != 1 {
		t.Fatalf("expected a single reported change, got %d", n)
	}
}

func TestMonitorForget(t *testing.T) {
	m := NewMonitor(time.Minute, time.Minute, nil)
	defer m.Close()

	m.Track("p1")
	m.Forget("p1")
	if m.State("p1") != StateDisconnected {
		t.Fatal("forgotten players should read as disconnected")
	}
	m.Touch("p1") // must not resurrect
	if m.State("p1") != StateDisconnected {
		t.Fatal("touch after forget should be ignored")
	}
}
