package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrBudgetDuplicate = errors.New("budget for this category and window already exists")
)

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetDuplicate
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) List(userID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, int64, error) {
	order, err := orderClause(filters.Ordering, models.BudgetOrderings, "start_date DESC, id ASC")
	if err != nil {
		return nil, 0, err
	}

	var budgets []models.Budget
	var total int64

	query := r.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if filters.Period != "" {
		query = query.Where("period = ?", filters.Period)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count budgets: %w", err)
	}

	if err := paginate(query, filters.Page).Order(order).Find(&budgets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, total, nil
}

// ListOverlapping returns budgets whose date range intersects [from, to].
// A nil bound leaves that side open.
func (r *budgetRepository) ListOverlapping(userID uuid.UUID, from, to *time.Time) ([]models.Budget, error) {
	query := r.db.Where("user_id = ?", userID)
	if to != nil {
		query = query.Where("start_date <= ?", models.DayStart(*to))
	}
	if from != nil {
		query = query.Where("end_date >= ?", models.DayStart(*from))
	}

	var budgets []models.Budget
	if err := query.Order("start_date ASC, id ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list overlapping budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) ListAllByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ?", userID).Order("start_date ASC, id ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets for user: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) Update(budget *models.Budget) error {
	if err := r.db.Save(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetDuplicate
		}
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) DeleteByCategoryID(categoryID uuid.UUID) error {
	if err := r.db.Where("category_id = ?", categoryID).Delete(&models.Budget{}).Error; err != nil {
		return fmt.Errorf("failed to delete category budgets: %w", err)
	}
	return nil
}

func (r *budgetRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Budget{}).Error; err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}
	return nil
}
