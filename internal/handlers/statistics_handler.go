package handlers

import (
	"net/http"

	"zodis/internal/service"
)

// StatisticsHandler serves per-user statistics
type StatisticsHandler struct {
	stats *service.StatsService
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(stats *service.StatsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

type statisticsResponse struct {
	GamesPlayed    int     `json:"games_played"`
	GamesWon       int     `json:"games_won"`
	WinPercentage  float64 `json:"win_percentage"`
	CurrentStreak  int     `json:"current_streak"`
	MaxStreak      int     `json:"max_streak"`
	AverageGuesses float64 `json:"average_guesses"`
}

// Get handles GET /api/statistics/ for the authenticated user
func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	if userID == nil {
		respondWithError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	stats, err := h.stats.ForUser(*userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, statisticsResponse{
		GamesPlayed:    stats.GamesPlayed,
		GamesWon:       stats.GamesWon,
		WinPercentage:  stats.WinPercentage(),
		CurrentStreak:  stats.CurrentStreak,
		MaxStreak:      stats.MaxStreak,
		AverageGuesses: stats.AverageGuesses,
	})
}
