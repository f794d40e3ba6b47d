package services

import (
	"testing"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightService_ListAndAcknowledge(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := repositories.NewInsightRepository(db.DB)
	service := NewInsightService(repo)
	user := database.CreateTestUser(t, db.DB, "insights@example.com")

	insight := &models.Insight{
		UserID:      user.ID,
		Title:       "Groceries up 20%",
		Body:        "You spent more on groceries than last month.",
		Severity:    "info",
		GeneratedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(insight))

	unacknowledged := false
	insights, total, err := service.ListInsights(user.ID, models.InsightFilters{Acknowledged: &unacknowledged})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, insight.ID, insights[0].ID)

	acknowledged, err := service.AcknowledgeInsight(user.ID, insight.ID)
	require.NoError(t, err)
	assert.True(t, acknowledged.Acknowledged)

	again, err := service.AcknowledgeInsight(user.ID, insight.ID)
	require.NoError(t, err)
	assert.True(t, again.Acknowledged)

	_, total, err = service.ListInsights(user.ID, models.InsightFilters{Acknowledged: &unacknowledged})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestInsightService_AcknowledgeOtherUser(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := repositories.NewInsightRepository(db.DB)
	service := NewInsightService(repo)
	user := database.CreateTestUser(t, db.DB, "owner@example.com")

	insight := &models.Insight{UserID: user.ID, Title: "Saved more", Body: "Nice.", GeneratedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(insight))

	_, err := service.AcknowledgeInsight(uuid.New(), insight.ID)
	assert.ErrorIs(t, err, ErrInsightNotFound)
}
