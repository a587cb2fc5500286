package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// PlayerResult is one line of the final scoreboard.
type PlayerResult struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// WinningCombination pairs a round's prompt with the card that won it.
type WinningCombination struct {
	RoundNumber   int    `json:"roundNumber"`
	PromptCardID  string `json:"promptCardId"`
	WinningCardID string `json:"winningCardId"`
	WinnerID      string `json:"winnerId"`
}

// Summary is the read-only record handed to the persistence boundary once a
// match finishes. The engine does not depend on anyone consuming it.
type Summary struct {
	SessionID  string               `json:"sessionId"`
	Code       string               `json:"code"`
	WinnerID   string               `json:"winnerId"`
	RoundCount int                  `json:"roundCount"`
	Duration   time.Duration        `json:"duration"`
	Results    []PlayerResult       `json:"results"`
	Rounds     []WinningCombination `json:"rounds"`
	FinishedAt time.Time            `json:"finishedAt"`
}

// summaryLocked builds the summary from the archived rounds. Caller holds
// the session mutex.
func (s *Session) summaryLocked() *Summary {
	results := make([]PlayerResult, 0, len(s.players))
	for _, p := range s.players {
		results = append(results, PlayerResult{PlayerID: p.ID, Name: p.Name, Score: p.Score})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	rounds := make([]WinningCombination, 0, len(s.history))
	for _, r := range s.history {
		rounds = append(rounds, WinningCombination{
			RoundNumber:   r.Number,
			PromptCardID:  r.PromptCardID,
			WinningCardID: r.WinningCardID,
			WinnerID:      r.WinnerID,
		})
	}

	return &Summary{
		SessionID:  s.ID,
		Code:       s.Code,
		WinnerID:   s.winnerID,
		RoundCount: s.roundCount,
		Duration:   s.finishedAt.Sub(s.startedAt),
		Results:    results,
		Rounds:     rounds,
		FinishedAt: s.finishedAt,
	}
}

// WriteSummary appends a human-readable match record to the given file.
func WriteSummary(sum *Summary, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Slights Match Results - Session %s\n", sum.Code))
	sb.WriteString(fmt.Sprintf("Finished: %s\n", sum.FinishedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Rounds: %d, Duration: %s\n", sum.RoundCount, sum.Duration.Round(time.Second)))
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	sb.WriteString("Final scores:\n")
	for _, r := range sum.Results {
		marker := ""
		if r.PlayerID == sum.WinnerID {
			marker = " (winner)"
		}
		sb.WriteString(fmt.Sprintf("- %s: %d points%s\n", r.Name, r.Score, marker))
	}

	if len(sum.Rounds) > 0 {
		sb.WriteString("\nWinning combinations:\n")
		for _, r := range sum.Rounds {
			if r.WinnerID == "" {
				sb.WriteString(fmt.Sprintf("- Round %d: %s (unscored)\n", r.RoundNumber, r.PromptCardID))
				continue
			}
			sb.WriteString(fmt.Sprintf("- Round %d: %s + %s\n", r.RoundNumber, r.PromptCardID, r.WinningCardID))
		}
	}
	sb.WriteString("\n")

	if _, err := file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}
