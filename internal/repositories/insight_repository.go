package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInsightNotFound = errors.New("insight not found")

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepositoryInterface {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(insight *models.Insight) error {
	if err := r.db.Create(insight).Error; err != nil {
		return fmt.Errorf("failed to create insight: %w", err)
	}
	return nil
}

func (r *insightRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Insight, error) {
	var insight models.Insight
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&insight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return &insight, nil
}

// List returns insights newest first
func (r *insightRepository) List(userID uuid.UUID, filters models.InsightFilters) ([]models.Insight, int64, error) {
	var insights []models.Insight
	var total int64

	query := r.db.Model(&models.Insight{}).Where("user_id = ?", userID)
	if filters.Acknowledged != nil {
		query = query.Where("acknowledged = ?", *filters.Acknowledged)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count insights: %w", err)
	}

	if err := paginate(query, filters.Page).Order("generated_at DESC, id ASC").Find(&insights).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list insights: %w", err)
	}

	return insights, total, nil
}

func (r *insightRepository) ListAllByUserID(userID uuid.UUID) ([]models.Insight, error) {
	var insights []models.Insight
	if err := r.db.Where("user_id = ?", userID).Order("generated_at DESC, id ASC").Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("failed to get insights for user: %w", err)
	}
	return insights, nil
}

func (r *insightRepository) Acknowledge(id uuid.UUID) error {
	result := r.db.Model(&models.Insight{ID: id}).Update("acknowledged", true)
	if result.Error != nil {
		return fmt.Errorf("failed to acknowledge insight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}

func (r *insightRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Insight{}).Error; err != nil {
		return fmt.Errorf("failed to delete insights: %w", err)
	}
	return nil
}
