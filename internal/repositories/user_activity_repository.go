package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userActivityRepository struct {
	db *gorm.DB
}

func NewUserActivityRepository(db *gorm.DB) UserActivityRepositoryInterface {
	return &userActivityRepository{db: db}
}

func (r *userActivityRepository) Create(activity *models.UserActivity) error {
	if activity == nil {
		return errors.New("activity cannot be nil")
	}

	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to record user activity: %w", err)
	}
	return nil
}

func (r *userActivityRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.UserActivity, int64, error) {
	var activities []models.UserActivity
	var total int64

	query := r.db.Model(&models.UserActivity{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user activity: %w", err)
	}

	page := models.Page{Limit: limit, Offset: offset}
	if err := paginate(query, page).Order("user_activities.timestamp DESC, user_activities.id ASC").Find(&activities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get user activity: %w", err)
	}

	return activities, total, nil
}

func (r *userActivityRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.UserActivity{}).Error; err != nil {
		return fmt.Errorf("failed to delete user activity: %w", err)
	}
	return nil
}
