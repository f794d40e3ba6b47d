package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrBudgetDuplicate       = errors.New("a budget for this category, period and dates already exists")
	ErrBudgetInvalidCategory = errors.New("budgets require one of your expense categories")
)

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *budgetService) ListBudgets(userID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, int64, error) {
	budgets, total, err := s.budgetRepo.List(userID, filters)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidOrdering) {
			return nil, 0, ErrInvalidOrdering
		}
		return nil, 0, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, total, nil
}

func (s *budgetService) CreateBudget(userID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Period:      req.Period,
		LimitAmount: req.LimitAmount,
	}
	if err := applyBudgetDates(budget, &req.StartDate, &req.EndDate); err != nil {
		return nil, err
	}
	if err := s.checkCategory(userID, budget.CategoryID); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, mapBudgetError(err)
	}
	return budget, nil
}

func (s *budgetService) GetBudget(userID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByIDForUser(budgetID, userID)
	if err != nil {
		return nil, mapBudgetError(err)
	}
	return budget, nil
}

func (s *budgetService) ReplaceBudget(userID, budgetID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByIDForUser(budgetID, userID)
	if err != nil {
		return nil, mapBudgetError(err)
	}

	budget.CategoryID = req.CategoryID
	budget.Period = req.Period
	budget.LimitAmount = req.LimitAmount
	if err := applyBudgetDates(budget, &req.StartDate, &req.EndDate); err != nil {
		return nil, err
	}

	return s.save(userID, budget)
}

func (s *budgetService) PatchBudget(userID, budgetID uuid.UUID, req *dto.BudgetPatchRequest) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByIDForUser(budgetID, userID)
	if err != nil {
		return nil, mapBudgetError(err)
	}

	if req.CategoryID != nil {
		budget.CategoryID = *req.CategoryID
	}
	if req.Period != nil {
		budget.Period = *req.Period
	}
	if req.LimitAmount != nil {
		budget.LimitAmount = *req.LimitAmount
	}
	if err := applyBudgetDates(budget, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	return s.save(userID, budget)
}

func (s *budgetService) DeleteBudget(userID, budgetID uuid.UUID) error {
	budget, err := s.budgetRepo.GetByIDForUser(budgetID, userID)
	if err != nil {
		return mapBudgetError(err)
	}
	if err := s.budgetRepo.Delete(budget.ID); err != nil {
		return mapBudgetError(err)
	}
	return nil
}

func (s *budgetService) save(userID uuid.UUID, budget *models.Budget) (*models.Budget, error) {
	if err := s.checkCategory(userID, budget.CategoryID); err != nil {
		return nil, err
	}
	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, mapBudgetError(err)
	}
	return budget, nil
}

// checkCategory requires the category to belong to the user and track expenses
func (s *budgetService) checkCategory(userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrBudgetInvalidCategory
		}
		return fmt.Errorf("failed to get budget category: %w", err)
	}
	if category.Type != models.CategoryTypeExpense {
		return ErrBudgetInvalidCategory
	}
	return nil
}

func applyBudgetDates(budget *models.Budget, start, end *string) error {
	if start != nil {
		parsed, err := models.ParseDate(*start)
		if err != nil {
			return fmt.Errorf("invalid start_date: %w", err)
		}
		budget.StartDate = parsed
	}
	if end != nil {
		parsed, err := models.ParseDate(*end)
		if err != nil {
			return fmt.Errorf("invalid end_date: %w", err)
		}
		budget.EndDate = parsed
	}
	if budget.EndDate.Before(budget.StartDate) {
		return models.ErrBudgetDateRange
	}
	return nil
}

func mapBudgetError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrBudgetNotFound):
		return ErrBudgetNotFound
	case errors.Is(err, repositories.ErrBudgetDuplicate):
		return ErrBudgetDuplicate
	default:
		return err
	}
}
