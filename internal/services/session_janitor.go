package services

import (
	"context"
	"log/slog"
	"time"

	"budgetbuddy/internal/repositories"
)

const DefaultSessionSweepInterval = time.Hour

// SessionJanitor drops refresh tokens and blacklist entries whose JWTs have
// expired. Neither table is consulted for expired tokens, so the rows are dead.
type SessionJanitor struct {
	refreshTokens repositories.RefreshTokenRepositoryInterface
	blacklist     repositories.BlacklistedTokenRepositoryInterface
	interval      time.Duration
	logger        *slog.Logger
}

func NewSessionJanitor(
	refreshTokens repositories.RefreshTokenRepositoryInterface,
	blacklist repositories.BlacklistedTokenRepositoryInterface,
	interval time.Duration,
	logger *slog.Logger,
) *SessionJanitor {
	if interval <= 0 {
		interval = DefaultSessionSweepInterval
	}
	return &SessionJanitor{
		refreshTokens: refreshTokens,
		blacklist:     blacklist,
		interval:      interval,
		logger:        logger,
	}
}

// Sweep purges both tables once and returns how many rows went.
func (j *SessionJanitor) Sweep() (int64, error) {
	refreshed, err := j.refreshTokens.DeleteExpired()
	if err != nil {
		return 0, err
	}
	blacklisted, err := j.blacklist.DeleteExpired()
	if err != nil {
		return refreshed, err
	}
	return refreshed + blacklisted, nil
}

// Run sweeps on every tick until ctx is done.
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := j.Sweep()
			if err != nil {
				j.logger.Error("session sweep failed", "error", err)
				continue
			}
			if purged > 0 {
				j.logger.Info("expired sessions purged", "rows", purged)
			}
		}
	}
}
