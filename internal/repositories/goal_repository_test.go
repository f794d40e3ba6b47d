package repositories

import (
	"testing"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestGoalRepository(t *testing.T) {
	suite.Run(t, new(GoalRepositorySuite))
}

type GoalRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     GoalRepositoryInterface
	insights InsightRepositoryInterface
	user     *models.User
}

func (s *GoalRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)
	s.insights = NewInsightRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db.DB, "goals@example.com")
}

func (s *GoalRepositorySuite) newGoal(name, target string) *models.Goal {
	goal := &models.Goal{
		UserID:       s.user.ID,
		Name:         name,
		TargetAmount: decimal.RequireFromString(target),
	}
	s.Require().NoError(s.repo.Create(goal))
	return goal
}

func (s *GoalRepositorySuite) contribute(goal *models.Goal, amount string) *models.GoalContribution {
	contribution := &models.GoalContribution{
		GoalID: goal.ID,
		Amount: decimal.RequireFromString(amount),
	}
	s.Require().NoError(s.repo.CreateContribution(contribution))
	return contribution
}

func (s *GoalRepositorySuite) TestCreateDefaultsAndValidation() {
	goal := s.newGoal("Emergency fund", "5000")
	s.Equal(models.GoalStatusActive, goal.Status)

	err := s.repo.Create(&models.Goal{UserID: s.user.ID, Name: "Nothing", TargetAmount: decimal.Zero})
	s.ErrorIs(err, models.ErrGoalTargetNotPositive)
}

func (s *GoalRepositorySuite) TestListAndUpdate() {
	vacation := s.newGoal("Vacation", "2000")
	s.newGoal("Laptop", "1500")

	vacation.Status = models.GoalStatusPaused
	s.NoError(s.repo.Update(vacation))

	goals, total, err := s.repo.List(s.user.ID, models.GoalFilters{Status: models.GoalStatusPaused})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(vacation.ID, goals[0].ID)

	_, total, err = s.repo.List(s.user.ID, models.GoalFilters{})
	s.NoError(err)
	s.Equal(int64(2), total)

	other := database.CreateTestUser(s.T(), s.db.DB, "other@example.com")
	_, err = s.repo.GetByIDForUser(vacation.ID, other.ID)
	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestContributions() {
	goal := s.newGoal("Vacation", "2000")
	first := s.contribute(goal, "100.10")
	s.contribute(goal, "0.20")

	sum, err := s.repo.SumContributions(goal.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("100.30").Equal(sum), sum.String())

	contributions, err := s.repo.ListContributions(goal.ID)
	s.NoError(err)
	s.Len(contributions, 2)

	byUser, err := s.repo.ListContributionsByUserID(s.user.ID)
	s.NoError(err)
	s.Len(byUser, 2)

	found, err := s.repo.GetContribution(first.ID, goal.ID)
	s.NoError(err)
	s.True(first.Amount.Equal(found.Amount))

	_, err = s.repo.GetContribution(first.ID, uuid.New())
	s.ErrorIs(err, ErrContributionNotFound)

	s.NoError(s.repo.DeleteContribution(first.ID))
	s.ErrorIs(s.repo.DeleteContribution(first.ID), ErrContributionNotFound)

	sum, err = s.repo.SumContributions(goal.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("0.20").Equal(sum))

	err = s.repo.CreateContribution(&models.GoalContribution{GoalID: goal.ID, Amount: decimal.Zero})
	s.ErrorIs(err, models.ErrContributionAmount)
}

func (s *GoalRepositorySuite) TestClearSourceAccount() {
	goal := s.newGoal("Vacation", "2000")
	account := database.CreateTestAccount(s.T(), s.db.DB, s.user.ID, "Savings", "USD")

	contribution := &models.GoalContribution{
		GoalID:          goal.ID,
		Amount:          decimal.NewFromInt(25),
		SourceAccountID: &account.ID,
	}
	s.Require().NoError(s.repo.CreateContribution(contribution))
	s.contribute(goal, "5")

	cleared, err := s.repo.ClearSourceAccount(account.ID)
	s.NoError(err)
	s.Equal(int64(1), cleared)

	found, err := s.repo.GetContribution(contribution.ID, goal.ID)
	s.NoError(err)
	s.Nil(found.SourceAccountID)
}

func (s *GoalRepositorySuite) TestDeleteRemovesContributions() {
	goal := s.newGoal("Vacation", "2000")
	s.contribute(goal, "10")
	kept := s.newGoal("Laptop", "1500")
	s.contribute(kept, "20")

	s.NoError(s.repo.Delete(goal.ID))
	s.ErrorIs(s.repo.Delete(goal.ID), ErrGoalNotFound)

	contributions, err := s.repo.ListContributions(goal.ID)
	s.NoError(err)
	s.Empty(contributions)

	s.NoError(s.repo.DeleteByUserID(s.user.ID))
	byUser, err := s.repo.ListContributionsByUserID(s.user.ID)
	s.NoError(err)
	s.Empty(byUser)

	goals, err := s.repo.ListAllByUserID(s.user.ID)
	s.NoError(err)
	s.Empty(goals)
}

func (s *GoalRepositorySuite) TestInsights() {
	older := &models.Insight{
		UserID:      s.user.ID,
		Title:       "Groceries over budget",
		Body:        "You spent 120% of your groceries budget.",
		Severity:    models.InsightSeverityWarn,
		GeneratedAt: time.Now().UTC().Add(-time.Hour),
	}
	newer := &models.Insight{
		UserID:   s.user.ID,
		Title:    "Savings streak",
		Body:     "Three months of positive cashflow.",
		Severity: models.InsightSeverityInfo,
	}
	s.Require().NoError(s.insights.Create(older))
	s.Require().NoError(s.insights.Create(newer))

	insights, total, err := s.insights.List(s.user.ID, models.InsightFilters{})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Equal(newer.ID, insights[0].ID)

	s.NoError(s.insights.Acknowledge(older.ID))
	s.ErrorIs(s.insights.Acknowledge(uuid.New()), ErrInsightNotFound)

	unacknowledged := false
	insights, total, err = s.insights.List(s.user.ID, models.InsightFilters{Acknowledged: &unacknowledged})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(newer.ID, insights[0].ID)

	found, err := s.insights.GetByIDForUser(older.ID, s.user.ID)
	s.NoError(err)
	s.True(found.Acknowledged)

	s.NoError(s.insights.DeleteByUserID(s.user.ID))
	all, err := s.insights.ListAllByUserID(s.user.ID)
	s.NoError(err)
	s.Empty(all)
}
