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

var ErrInvalidPreferences = errors.New("preferences must be a JSON object")

type profileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	logger      *slog.Logger
}

func NewProfileService(profileRepo repositories.ProfileRepositoryInterface, logger *slog.Logger) ProfileServiceInterface {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile creates the profile with defaults on first access
func (s *profileService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	profile = &models.Profile{UserID: userID}
	if err := s.profileRepo.Create(profile); err != nil {
		// A concurrent request may have created it first
		if existing, getErr := s.profileRepo.GetByUserID(userID); getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Debug("profile created on first access", "user_id", userID)
	return profile, nil
}

func (s *profileService) UpdateProfile(userID uuid.UUID, req *dto.ProfileUpdateRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		profile.Currency = strings.ToUpper(*req.Currency)
	}
	if req.MonthlyIncome != nil {
		profile.MonthlyIncome = *req.MonthlyIncome
	}
	if req.FinancialGoalsNote != nil {
		profile.FinancialGoalsNote = *req.FinancialGoalsNote
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetPreferences(userID uuid.UUID) (models.JSONBMap, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile.Preferences == nil {
		return models.JSONBMap{}, nil
	}
	return profile.Preferences, nil
}

// ReplacePreferences stores preferences wholesale. Only JSON objects are accepted.
func (s *profileService) ReplacePreferences(userID uuid.UUID, preferences interface{}) (models.JSONBMap, error) {
	document, ok := preferences.(map[string]interface{})
	if !ok {
		return nil, ErrInvalidPreferences
	}

	if _, err := s.GetProfile(userID); err != nil {
		return nil, err
	}

	stored := models.JSONBMap(document)
	if err := s.profileRepo.UpdatePreferences(userID, stored); err != nil {
		return nil, err
	}
	return stored, nil
}
