package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// StatsService aggregates idea counts for profile and admin dashboards
type StatsService struct {
	ideaRepo ports.IdeaRepository
	logger   *logger.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(ideaRepo ports.IdeaRepository, logger *logger.Logger) *StatsService {
	return &StatsService{
		ideaRepo: ideaRepo,
		logger:   logger,
	}
}

// UserStats returns the caller's submission counts and success rate. The rate
// counts accepted ideas against evaluated ones; pending ideas do not dilute it.
func (s *StatsService) UserStats(ctx context.Context, userID uuid.UUID) (*ports.UserStats, error) {
	counts, err := s.ideaRepo.CountByStatus(ctx, &userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count ideas: %w", err)
	}

	stats := &ports.UserStats{
		Total:    counts.Total,
		Accepted: counts.Accepted,
		Rejected: counts.Rejected,
		Pending:  counts.Pending,
	}

	if evaluated := counts.Accepted + counts.Rejected; evaluated > 0 {
		stats.SuccessRate = float64(counts.Accepted) / float64(evaluated) * 100
	}

	return stats, nil
}

// AdminStats returns portal-wide counts plus per-day submission volume.
func (s *StatsService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	counts, err := s.ideaRepo.CountByStatus(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count ideas: %w", err)
	}

	daily, err := s.ideaRepo.DailyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily counts: %w", err)
	}

	stats := &ports.AdminStats{
		Total:            counts.Total,
		Accepted:         counts.Accepted,
		Rejected:         counts.Rejected,
		Pending:          counts.Pending,
		DailySubmissions: daily,
	}

	if counts.Total > 0 {
		stats.AcceptanceRate = float64(counts.Accepted) / float64(counts.Total) * 100
	}

	return stats, nil
}
