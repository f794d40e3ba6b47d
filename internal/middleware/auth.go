package middleware

import (
	stderrors "errors"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/handlers"
	"budgetbuddy/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	userEmailContextKey = "user_email"
	tokenJTIContextKey  = "token_jti"
)

// RequireAuth accepts an app access token that has not been revoked. When
// the app token does not verify, the bearer is tried as a Firebase ID token
// and resolved to a user the same way the exchange endpoint does.
func RequireAuth(tokenService services.TokenServiceInterface, authService services.AuthServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return authenticateFirebase(c, next, authService, token)
			}

			revoked, err := authService.IsTokenRevoked(claims.ID)
			if err != nil {
				return handlers.SendSystemError(c, err)
			}
			if revoked {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.AccessTokenContextKey, token)
			c.Set(userEmailContextKey, claims.Email)
			c.Set(tokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}

func authenticateFirebase(c echo.Context, next echo.HandlerFunc, authService services.AuthServiceInterface, token string) error {
	user, err := authService.ResolveFirebaseUser(c.Request().Context(), token)
	switch {
	case err == nil:
	case stderrors.Is(err, services.ErrExpiredToken):
		return handlers.SendError(c, errors.AuthExpiredToken)
	case stderrors.Is(err, services.ErrIdentityProviderUnavailable):
		return handlers.SendError(c, errors.AuthIdentityProviderDown)
	case stderrors.Is(err, services.ErrFirebaseDisabled), stderrors.Is(err, services.ErrInvalidIdentityToken):
		return handlers.SendError(c, errors.AuthInvalidTokenFormat)
	default:
		return handlers.SendSystemError(c, err)
	}

	c.Set(handlers.UserIDContextKey, user.ID)
	c.Set(handlers.AccessTokenContextKey, token)
	c.Set(userEmailContextKey, user.Email)

	return next(c)
}
