package services

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

var ErrInsightNotFound = errors.New("insight not found")

type insightService struct {
	insightRepo repositories.InsightRepositoryInterface
}

func NewInsightService(insightRepo repositories.InsightRepositoryInterface) InsightServiceInterface {
	return &insightService{insightRepo: insightRepo}
}

func (s *insightService) ListInsights(userID uuid.UUID, filters models.InsightFilters) ([]models.Insight, int64, error) {
	insights, total, err := s.insightRepo.List(userID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list insights: %w", err)
	}
	return insights, total, nil
}

// AcknowledgeInsight is idempotent
func (s *insightService) AcknowledgeInsight(userID, insightID uuid.UUID) (*models.Insight, error) {
	insight, err := s.insightRepo.GetByIDForUser(insightID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInsightNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, err
	}

	if insight.Acknowledged {
		return insight, nil
	}

	if err := s.insightRepo.Acknowledge(insight.ID); err != nil {
		if errors.Is(err, repositories.ErrInsightNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, err
	}

	insight.Acknowledged = true
	return insight, nil
}
