package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryDuplicate = errors.New("a category with this name and type already exists")
)

type categoryService struct {
	uow          repositories.UnitOfWorkInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(
	uow repositories.UnitOfWorkInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		uow:          uow,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories seeds the default categories the first time a user without
// any categories lists them.
func (s *categoryService) ListCategories(ctx context.Context, userID uuid.UUID, filters models.CategoryFilters) ([]models.Category, int64, error) {
	if err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		return seedDefaultCategories(repos, userID)
	}); err != nil {
		return nil, 0, err
	}

	categories, total, err := s.categoryRepo.List(userID, filters)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidOrdering) {
			return nil, 0, ErrInvalidOrdering
		}
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, total, nil
}

func (s *categoryService) CreateCategory(userID uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID:             userID,
		Name:               strings.TrimSpace(req.Name),
		Type:               req.Type,
		Icon:               req.Icon,
		Color:              req.Color,
		DefaultBudgetLimit: req.DefaultBudgetLimit,
		IsCustom:           true,
	}
	if req.IsCustom != nil {
		category.IsCustom = *req.IsCustom
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

func (s *categoryService) GetCategory(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

func (s *categoryService) ReplaceCategory(userID, categoryID uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		return nil, mapCategoryError(err)
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Type = req.Type
	category.Icon = req.Icon
	category.Color = req.Color
	category.DefaultBudgetLimit = req.DefaultBudgetLimit
	if req.IsCustom != nil {
		category.IsCustom = *req.IsCustom
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

func (s *categoryService) PatchCategory(userID, categoryID uuid.UUID, req *dto.CategoryPatchRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		return nil, mapCategoryError(err)
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		category.Type = *req.Type
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.DefaultBudgetLimit != nil {
		category.DefaultBudgetLimit = req.DefaultBudgetLimit
	}
	if req.IsCustom != nil {
		category.IsCustom = *req.IsCustom
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, mapCategoryError(err)
	}
	return category, nil
}

// DeleteCategory uncategorizes the category's transactions and removes its
// budgets before deleting the category. Balances are unaffected.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	return s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		category, err := repos.Categories.GetByIDForUser(categoryID, userID)
		if err != nil {
			return mapCategoryError(err)
		}

		cleared, err := repos.Transactions.ClearCategory(category.ID)
		if err != nil {
			return fmt.Errorf("failed to uncategorize transactions: %w", err)
		}

		if err := repos.Budgets.DeleteByCategoryID(category.ID); err != nil {
			return err
		}

		if err := repos.Categories.Delete(category.ID); err != nil {
			return mapCategoryError(err)
		}

		s.logger.Info("category deleted",
			"user_id", userID,
			"category_id", category.ID,
			"transactions_uncategorized", cleared)
		return nil
	})
}

// seedDefaultCategories must run inside a unit of work
func seedDefaultCategories(repos *repositories.TxRepositories, userID uuid.UUID) error {
	count, err := repos.Categories.CountByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, def := range models.DefaultCategories() {
		category := &models.Category{
			UserID: userID,
			Name:   def.Name,
			Type:   def.Type,
		}
		if err := repos.Categories.Create(category); err != nil && !errors.Is(err, repositories.ErrCategoryDuplicate) {
			return fmt.Errorf("failed to seed category %s: %w", def.Name, err)
		}
	}
	return nil
}

func mapCategoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repositories.ErrCategoryDuplicate):
		return ErrCategoryDuplicate
	default:
		return err
	}
}
