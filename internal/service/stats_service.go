package service

import (
	"zodis/internal/models"
	"zodis/internal/repository"
)

// StatsService handles per-user statistics
type StatsService struct {
	stats *repository.StatsRepository
}

// NewStatsService creates a new statistics service
func NewStatsService(stats *repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// RecordOutcome folds one completed game into the user's aggregates
func (s *StatsService) RecordOutcome(userID int64, won bool, guessCount int) (*models.Statistics, error) {
	return s.stats.RecordOutcome(userID, won, guessCount)
}

// ForUser returns a user's statistics. Users who never completed a game get
// a zero-valued view rather than an error.
func (s *StatsService) ForUser(userID int64) (*models.Statistics, error) {
	stats, err := s.stats.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &models.Statistics{UserID: userID}, nil
	}
	return stats, nil
}
