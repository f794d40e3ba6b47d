package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrContributionNotFound = errors.New("goal contribution not found")
)

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

func (r *goalRepository) List(userID uuid.UUID, filters models.GoalFilters) ([]models.Goal, int64, error) {
	var goals []models.Goal
	var total int64

	query := r.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count goals: %w", err)
	}

	if err := paginate(query, filters.Page).Order("created_at DESC, id ASC").Find(&goals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}

	return goals, total, nil
}

func (r *goalRepository) ListAllByUserID(userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals for user: %w", err)
	}
	return goals, nil
}

func (r *goalRepository) Update(goal *models.Goal) error {
	if err := r.db.Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

// Delete removes the goal together with its contributions
func (r *goalRepository) Delete(id uuid.UUID) error {
	if err := r.db.Where("goal_id = ?", id).Delete(&models.GoalContribution{}).Error; err != nil {
		return fmt.Errorf("failed to delete goal contributions: %w", err)
	}

	result := r.db.Delete(&models.Goal{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) DeleteByUserID(userID uuid.UUID) error {
	goalIDs := r.db.Model(&models.Goal{}).Select("id").Where("user_id = ?", userID)
	if err := r.db.Where("goal_id IN (?)", goalIDs).Delete(&models.GoalContribution{}).Error; err != nil {
		return fmt.Errorf("failed to delete goal contributions: %w", err)
	}
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Goal{}).Error; err != nil {
		return fmt.Errorf("failed to delete goals: %w", err)
	}
	return nil
}

func (r *goalRepository) CreateContribution(contribution *models.GoalContribution) error {
	if err := r.db.Create(contribution).Error; err != nil {
		return fmt.Errorf("failed to create goal contribution: %w", err)
	}
	return nil
}

func (r *goalRepository) GetContribution(id, goalID uuid.UUID) (*models.GoalContribution, error) {
	var contribution models.GoalContribution
	if err := r.db.Where("id = ? AND goal_id = ?", id, goalID).First(&contribution).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributionNotFound
		}
		return nil, fmt.Errorf("failed to get goal contribution: %w", err)
	}
	return &contribution, nil
}

func (r *goalRepository) ListContributions(goalID uuid.UUID) ([]models.GoalContribution, error) {
	var contributions []models.GoalContribution
	if err := r.db.Where("goal_id = ?", goalID).
		Order("contributed_at DESC, id ASC").
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("failed to list goal contributions: %w", err)
	}
	return contributions, nil
}

func (r *goalRepository) ListContributionsByUserID(userID uuid.UUID) ([]models.GoalContribution, error) {
	var contributions []models.GoalContribution
	if err := r.db.Joins("JOIN goals ON goals.id = goal_contributions.goal_id").
		Where("goals.user_id = ?", userID).
		Order("goal_contributions.contributed_at ASC, goal_contributions.id ASC").
		Find(&contributions).Error; err != nil {
		return nil, fmt.Errorf("failed to get goal contributions for user: %w", err)
	}
	return contributions, nil
}

func (r *goalRepository) SumContributions(goalID uuid.UUID) (decimal.Decimal, error) {
	var row decimalRow
	if err := r.db.Model(&models.GoalContribution{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("goal_id = ?", goalID).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum goal contributions: %w", err)
	}
	return row.value(), nil
}

func (r *goalRepository) DeleteContribution(id uuid.UUID) error {
	result := r.db.Delete(&models.GoalContribution{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal contribution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContributionNotFound
	}
	return nil
}

// ClearSourceAccount detaches contributions from an account that is being removed
func (r *goalRepository) ClearSourceAccount(accountID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.GoalContribution{}).
		Where("source_account_id = ?", accountID).
		Update("source_account_id", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear contribution source account: %w", result.Error)
	}
	return result.RowsAffected, nil
}
