package config

import (
	"errors"
	"fmt"
)

// Config holds all server configuration. Values are populated by the CLI
// flag/env binding in cmd/server; the fields here are the single source the
// rest of the program reads.
type Config struct {
	Bind      string
	Port      int
	CardsFile string // optional JSON card catalog override
	LogLevel  string

	ExportEnabled bool
	ExportFile    string

	// default match settings, overridable per session at create time
	ScoreLimit           int
	HandSize             int
	MinPlayers           int
	MaxPlayers           int
	SubmissionSeconds    int
	JudgingSeconds       int
	ResolutionSeconds    int
	PingGraceSeconds     int
	PingTimeoutSeconds   int
	AnonymousSubmissions bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Bind:                 "0.0.0.0",
		Port:                 8080,
		LogLevel:             "info",
		ExportEnabled:        false,
		ExportFile:           "./slights-results.txt",
		ScoreLimit:           5,
		HandSize:             7,
		MinPlayers:           3,
		MaxPlayers:           8,
		SubmissionSeconds:    60,
		JudgingSeconds:       45,
		ResolutionSeconds:    10,
		PingGraceSeconds:     10,
		PingTimeoutSeconds:   30,
		AnonymousSubmissions: true,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.ScoreLimit < 1 {
		return errors.New("score limit must be at least 1")
	}
	if c.HandSize < 1 {
		return errors.New("hand size must be at least 1")
	}
	if c.MinPlayers < 3 {
		return errors.New("a match needs at least 3 players")
	}
	if c.MaxPlayers < c.MinPlayers {
		return errors.New("max players cannot be below min players")
	}
	if c.SubmissionSeconds < 1 || c.JudgingSeconds < 1 {
		return errors.New("phase timers must be at least 1 second")
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
