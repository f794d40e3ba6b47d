package services

import (
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
	ErrGoalNotFound           = errors.New("goal not found")
	ErrContributionNotFound   = errors.New("goal contribution not found")
	ErrInvalidSourceAccount   = errors.New("source account must be one of your accounts")
	ErrGoalContributionAmount = models.ErrContributionAmount
	ErrGoalClosed             = models.ErrGoalClosed
)

type goalService struct {
	goalRepo    repositories.GoalRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

func NewGoalService(
	goalRepo repositories.GoalRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	logger *slog.Logger,
) GoalServiceInterface {
	return &goalService{
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *goalService) ListGoals(userID uuid.UUID, filters models.GoalFilters) ([]dto.GoalResponse, int64, error) {
	goals, total, err := s.goalRepo.List(userID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		response, err := s.withProgress(&goals[i])
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *response)
	}
	return responses, total, nil
}

func (s *goalService) CreateGoal(userID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	goal := &models.Goal{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		TargetAmount: req.TargetAmount,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if err := applyDeadline(goal, req.Deadline); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, err
	}
	return s.withProgress(goal)
}

func (s *goalService) GetGoal(userID, goalID uuid.UUID) (*dto.GoalDetailResponse, error) {
	goal, err := s.goalRepo.GetByIDForUser(goalID, userID)
	if err != nil {
		return nil, mapGoalError(err)
	}

	response, err := s.withProgress(goal)
	if err != nil {
		return nil, err
	}

	contributions, err := s.goalRepo.ListContributions(goal.ID)
	if err != nil {
		return nil, err
	}

	return &dto.GoalDetailResponse{
		GoalResponse:  *response,
		Contributions: contributions,
	}, nil
}

func (s *goalService) ReplaceGoal(userID, goalID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	goal, err := s.goalRepo.GetByIDForUser(goalID, userID)
	if err != nil {
		return nil, mapGoalError(err)
	}

	goal.Name = strings.TrimSpace(req.Name)
	goal.TargetAmount = req.TargetAmount
	goal.Notes = req.Notes
	if req.Status != "" {
		goal.Status = req.Status
	}
	goal.Deadline = nil
	if err := applyDeadline(goal, req.Deadline); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}
	return s.withProgress(goal)
}

func (s *goalService) PatchGoal(userID, goalID uuid.UUID, req *dto.GoalPatchRequest) (*dto.GoalResponse, error) {
	goal, err := s.goalRepo.GetByIDForUser(goalID, userID)
	if err != nil {
		return nil, mapGoalError(err)
	}

	if req.Name != nil {
		goal.Name = strings.TrimSpace(*req.Name)
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Notes != nil {
		goal.Notes = *req.Notes
	}
	if err := applyDeadline(goal, req.Deadline); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}
	return s.withProgress(goal)
}

// DeleteGoal removes the goal with all of its contributions
func (s *goalService) DeleteGoal(userID, goalID uuid.UUID) error {
	goal, err := s.goalRepo.GetByIDForUser(goalID, userID)
	if err != nil {
		return mapGoalError(err)
	}
	return mapGoalError(s.goalRepo.Delete(goal.ID))
}

// AddContribution records money set aside for a goal. Account balances are
// not touched.
func (s *goalService) AddContribution(userID, goalID uuid.UUID, req *dto.ContributionRequest) (*models.GoalContribution, error) {
	goal, err := s.goalRepo.GetByIDForUser(goalID, userID)
	if err != nil {
		return nil, mapGoalError(err)
	}

	if !goal.AcceptsContributions() {
		return nil, ErrGoalClosed
	}
	if !req.Amount.IsPositive() {
		return nil, ErrGoalContributionAmount
	}

	if req.SourceAccountID != nil {
		if _, err := s.accountRepo.GetByIDForUser(*req.SourceAccountID, userID); err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return nil, ErrInvalidSourceAccount
			}
			return nil, fmt.Errorf("failed to get source account: %w", err)
		}
	}

	contribution := &models.GoalContribution{
		GoalID:          goal.ID,
		Amount:          req.Amount,
		SourceAccountID: req.SourceAccountID,
		Note:            req.Note,
	}
	if req.ContributedAt != nil {
		contribution.ContributedAt = req.ContributedAt.UTC()
	}

	if err := s.goalRepo.CreateContribution(contribution); err != nil {
		return nil, err
	}

	s.logger.Info("goal contribution recorded",
		"user_id", userID,
		"goal_id", goal.ID,
		"contribution_id", contribution.ID,
		"amount", contribution.Amount.StringFixed(models.AmountScale))

	return contribution, nil
}

func (s *goalService) DeleteContribution(userID, goalID, contributionID uuid.UUID) error {
	goal, err := s.goalRepo.GetByIDForUser(goalID, userID)
	if err != nil {
		return mapGoalError(err)
	}

	contribution, err := s.goalRepo.GetContribution(contributionID, goal.ID)
	if err != nil {
		return mapGoalError(err)
	}
	return mapGoalError(s.goalRepo.DeleteContribution(contribution.ID))
}

func (s *goalService) withProgress(goal *models.Goal) (*dto.GoalResponse, error) {
	contributed, err := s.goalRepo.SumContributions(goal.ID)
	if err != nil {
		return nil, err
	}
	return &dto.GoalResponse{
		Goal:     goal,
		Progress: models.NewGoalProgress(goal.TargetAmount, contributed),
	}, nil
}

// applyDeadline leaves the deadline untouched when value is nil and clears it
// when value is empty.
func applyDeadline(goal *models.Goal, value *string) error {
	if value == nil {
		return nil
	}
	if *value == "" {
		goal.Deadline = nil
		return nil
	}

	deadline, err := models.ParseDate(*value)
	if err != nil {
		return fmt.Errorf("invalid deadline: %w", err)
	}
	goal.Deadline = &deadline
	return nil
}

func mapGoalError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrGoalNotFound):
		return ErrGoalNotFound
	case errors.Is(err, repositories.ErrContributionNotFound):
		return ErrContributionNotFound
	default:
		return err
	}
}
