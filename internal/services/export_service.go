package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ExportRepositories groups the read repositories an export needs
type ExportRepositories struct {
	Profiles     repositories.ProfileRepositoryInterface
	Accounts     repositories.AccountRepositoryInterface
	Categories   repositories.CategoryRepositoryInterface
	Budgets      repositories.BudgetRepositoryInterface
	Transactions repositories.TransactionRepositoryInterface
	Goals        repositories.GoalRepositoryInterface
	Insights     repositories.InsightRepositoryInterface
}

type exportService struct {
	uow         repositories.UnitOfWorkInterface
	repos       ExportRepositories
	profiles    ProfileServiceInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func NewExportService(
	uow repositories.UnitOfWorkInterface,
	repos ExportRepositories,
	profiles ProfileServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExportServiceInterface {
	return &exportService{
		uow:         uow,
		repos:       repos,
		profiles:    profiles,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

// ExportUserData loads every collection of the user concurrently
func (s *exportService) ExportUserData(ctx context.Context, userID uuid.UUID) (*dto.ExportResponse, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricExportDuration, time.Since(start))
	}()

	export := &dto.ExportResponse{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.profiles.GetProfile(userID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		export.Profile = profile
		return nil
	})

	g.Go(func() (err error) {
		export.Accounts, err = s.repos.Accounts.ListAllByUserID(userID)
		return err
	})

	g.Go(func() (err error) {
		export.Categories, err = s.repos.Categories.ListAllByUserID(userID)
		return err
	})

	g.Go(func() error {
		budgets, err := s.repos.Budgets.ListAllByUserID(userID)
		if err != nil {
			return err
		}
		export.Budgets = dto.NewBudgetResponses(budgets)
		return nil
	})

	g.Go(func() (err error) {
		export.Transactions, err = s.repos.Transactions.ListAllByUserID(userID)
		return err
	})

	g.Go(func() (err error) {
		export.Goals, err = s.repos.Goals.ListAllByUserID(userID)
		return err
	})

	g.Go(func() (err error) {
		export.GoalContributions, err = s.repos.Goals.ListContributionsByUserID(userID)
		return err
	})

	g.Go(func() (err error) {
		export.Insights, err = s.repos.Insights.ListAllByUserID(userID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to export user data", "user_id", userID, "error", err)
		return nil, err
	}

	fillEmptyCollections(export)
	return export, nil
}

// DeleteUserData hard-deletes every row owned by the user except the user
// itself. The audit entry is written in the same unit of work.
func (s *exportService) DeleteUserData(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) error {
	err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		steps := []struct {
			name string
			run  func(uuid.UUID) error
		}{
			{"goals", repos.Goals.DeleteByUserID},
			{"budgets", repos.Budgets.DeleteByUserID},
			{"transactions", repos.Transactions.DeleteByUserID},
			{"categories", repos.Categories.DeleteByUserID},
			{"accounts", repos.Accounts.DeleteByUserID},
			{"insights", repos.Insights.DeleteByUserID},
			{"activities", repos.Activities.DeleteByUserID},
			{"profile", repos.Profiles.DeleteByUserID},
		}

		for _, step := range steps {
			if err := step.run(userID); err != nil {
				return fmt.Errorf("failed to delete %s: %w", step.name, err)
			}
		}

		return repos.AuditLogs.Create(&models.AuditLog{
			UserID:     &userID,
			Action:     models.AuditActionDataDeleted,
			Resource:   models.AuditResourceUser,
			ResourceID: userID.String(),
			IPAddress:  ipAddress,
			UserAgent:  userAgent,
		})
	})
	if err != nil {
		return err
	}

	s.auditLogger.LogUserDataDeleted(ctx, userID)
	return nil
}

func fillEmptyCollections(export *dto.ExportResponse) {
	if export.Accounts == nil {
		export.Accounts = []models.Account{}
	}
	if export.Categories == nil {
		export.Categories = []models.Category{}
	}
	if export.Transactions == nil {
		export.Transactions = []models.Transaction{}
	}
	if export.Goals == nil {
		export.Goals = []models.Goal{}
	}
	if export.GoalContributions == nil {
		export.GoalContributions = []models.GoalContribution{}
	}
	if export.Insights == nil {
		export.Insights = []models.Insight{}
	}
}
