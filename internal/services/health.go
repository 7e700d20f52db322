package services

import (
	"context"
	"fmt"

	"github.com/abrezinsky/biztime/internal/logger"
	"github.com/abrezinsky/biztime/internal/repository"
)

// HealthService reports whether the store is reachable
type HealthService struct {
	log  logger.Logger
	repo repository.HealthRepository
}

// NewHealthService creates a new HealthService
func NewHealthService(log logger.Logger, repo repository.HealthRepository) *HealthService {
	return &HealthService{log: log, repo: repo}
}

// Check pings the store
func (s *HealthService) Check(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		s.log.Warn("Health check failed", "error", err)
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
