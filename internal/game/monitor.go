package game

import (
	"sync"
	"time"
)

const monitorInterval = time.Second

// Monitor tracks per-player liveness from transport pings and drives
// Connected -> Connecting -> Disconnected transitions. It runs independently
// of game phase; the session reacts to the transitions it reports.
type Monitor struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	states   map[string]ConnectionState
	grace    time.Duration // silence before Connected degrades to Connecting
	timeout  time.Duration // silence before Connecting degrades to Disconnected
	onChange func(playerID string, state ConnectionState)
	done     chan struct{}
	once     sync.Once
}

// NewMonitor creates a monitor. onChange is invoked outside the monitor lock
// for every state transition.
func NewMonitor(grace, timeout time.Duration, onChange func(string, ConnectionState)) *Monitor {
	m := &Monitor{
		lastSeen: make(map[string]time.Time),
		states:   make(map[string]ConnectionState),
		grace:    grace,
		timeout:  timeout,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go m.loop()
	return m
}

// Track starts watching a player, initially Connected.
func (m *Monitor) Track(playerID string) {
	m.mu.Lock()
	m.lastSeen[playerID] = time.Now()
	m.states[playerID] = StateConnected
	m.mu.Unlock()
}

// Forget stops watching a player.
func (m *Monitor) Forget(playerID string) {
	m.mu.Lock()
	delete(m.lastSeen, playerID)
	delete(m.states, playerID)
	m.mu.Unlock()
}

// Touch records a liveness signal. A player seen again after degrading is
// restored to Connected and re-included in eligibility checks from the next
// evaluation on.
func (m *Monitor) Touch(playerID string) {
	m.mu.Lock()
	if _, ok := m.states[playerID]; !ok {
		m.mu.Unlock()
		return
	}
	m.lastSeen[playerID] = time.Now()
	changed := m.states[playerID] != StateConnected
	m.states[playerID] = StateConnected
	m.mu.Unlock()
	if changed && m.onChange != nil {
		m.onChange(playerID, StateConnected)
	}
}

// MarkDisconnected forces a player straight to Disconnected, used when the
// transport observes an explicit leave or a closed connection.
func (m *Monitor) MarkDisconnected(playerID string) {
	m.mu.Lock()
	if _, ok := m.states[playerID]; !ok {
		m.mu.Unlock()
		return
	}
	changed := m.states[playerID] != StateDisconnected
	m.states[playerID] = StateDisconnected
	m.mu.Unlock()
	if changed && m.onChange != nil {
		m.onChange(playerID, StateDisconnected)
	}
}

// State returns the tracked state for a player.
func (m *Monitor) State(playerID string) ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.states[playerID]; ok {
		return s
	}
	return StateDisconnected
}

// Close stops the monitor loop.
func (m *Monitor) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

type stateChange struct {
	playerID string
	state    ConnectionState
}

func (m *Monitor) sweep() {
	now := time.Now()
	var changes []stateChange
	m.mu.Lock()
	for id, seen := range m.lastSeen {
		silence := now.Sub(seen)
		switch m.states[id] {
		case StateConnected:
			if silence > m.grace {
				m.states[id] = StateConnecting
				changes = append(changes, stateChange{id, StateConnecting})
			}
		case StateConnecting:
			if silence > m.timeout {
				m.states[id] = StateDisconnected
				changes = append(changes, stateChange{id, StateDisconnected})
			}
		}
	}
	m.mu.Unlock()
	for _, c := range changes {
		if m.onChange != nil {
			m.onChange(c.playerID, c.state)
		}
	}
}
