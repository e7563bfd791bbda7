package models

import (
	"math"
	"testing"
)

func TestStatisticsRecordOutcomeFirstWin(t *testing.T) {
	s := &Statistics{UserID: 1}
	s.RecordOutcome(true, 4)

	if s.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", s.GamesPlayed)
	}
	if s.GamesWon != 1 {
		t.Errorf("GamesWon = %d, want 1", s.GamesWon)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", s.CurrentStreak)
	}
	if s.MaxStreak != 1 {
		t.Errorf("MaxStreak = %d, want 1", s.MaxStreak)
	}
	if s.AverageGuesses != 4.0 {
		t.Errorf("AverageGuesses = %v, want 4.0", s.AverageGuesses)
	}
}

func TestStatisticsRecordOutcomeSequence(t *testing.T) {
	// win(3), win(5), loss, win(5)
	s := &Statistics{UserID: 1}
	s.RecordOutcome(true, 3)
	s.RecordOutcome(true, 5)
	s.RecordOutcome(false, 6)
	s.RecordOutcome(true, 5)

	if s.GamesPlayed != 4 {
		t.Errorf("GamesPlayed = %d, want 4", s.GamesPlayed)
	}
	if s.GamesWon != 3 {
		t.Errorf("GamesWon = %d, want 3", s.GamesWon)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", s.CurrentStreak)
	}
	if s.MaxStreak != 2 {
		t.Errorf("MaxStreak = %d, want 2", s.MaxStreak)
	}
	want := (3.0 + 5.0 + 5.0) / 3.0
	if math.Abs(s.AverageGuesses-want) > 1e-9 {
		t.Errorf("AverageGuesses = %v, want %v", s.AverageGuesses, want)
	}
}

func TestStatisticsLossKeepsAverageAndMax(t *testing.T) {
	s := &Statistics{UserID: 1}
	s.RecordOutcome(true, 2)
	s.RecordOutcome(true, 4)
	s.RecordOutcome(false, 6)

	if s.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", s.CurrentStreak)
	}
	if s.MaxStreak != 2 {
		t.Errorf("MaxStreak = %d, want 2", s.MaxStreak)
	}
	if s.AverageGuesses != 3.0 {
		t.Errorf("AverageGuesses = %v, want 3.0", s.AverageGuesses)
	}
}

func TestStatisticsWinWithoutGuessCount(t *testing.T) {
	s := &Statistics{UserID: 1}
	s.RecordOutcome(true, 4)
	s.RecordOutcome(true, 0)

	if s.GamesWon != 2 {
		t.Errorf("GamesWon = %d, want 2", s.GamesWon)
	}
	if s.AverageGuesses != 4.0 {
		t.Errorf("AverageGuesses = %v, want 4.0 (unknown count leaves average)", s.AverageGuesses)
	}
}

func TestWinPercentage(t *testing.T) {
	tests := []struct {
		name   string
		stats  Statistics
		want   float64
	}{
		{"no games", Statistics{}, 0},
		{"half won", Statistics{GamesPlayed: 4, GamesWon: 2}, 50},
		{"all won", Statistics{GamesPlayed: 3, GamesWon: 3}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.WinPercentage(); got != tt.want {
				t.Errorf("WinPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}
