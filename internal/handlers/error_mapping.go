package handlers

import (
	stderrors "errors"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// errorCodes maps service and model sentinels to API error codes. Order
// matters: the first match wins.
var errorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrInvalidCredentials, errors.AuthInvalidCredentials},
	{services.ErrAccountLocked, errors.AuthAccountLocked},
	{services.ErrUserAlreadyExists, errors.AuthEmailAlreadyRegistered},
	{services.ErrWeakPassword, errors.AuthWeakPassword},
	{services.ErrInvalidRefreshToken, errors.AuthInvalidRefreshToken},
	{services.ErrExpiredToken, errors.AuthExpiredToken},
	{services.ErrInvalidIdentityToken, errors.AuthInvalidTokenFormat},
	{services.ErrEmptyToken, errors.AuthMissingToken},
	{services.ErrIdentityProviderUnavailable, errors.AuthIdentityProviderDown},
	{services.ErrFirebaseDisabled, errors.AuthIdentityProviderDown},

	{services.ErrInvalidOrdering, errors.ValidationInvalidQuery},

	{repositories.ErrProfileNotFound, errors.ProfileNotFound},
	{services.ErrInvalidPreferences, errors.ProfileInvalidPreferences},

	{services.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrAccountNameExists, errors.AccountDuplicateName},
	{services.ErrCurrencyLocked, errors.AccountCurrencyLocked},
	{models.ErrInvalidAccountType, errors.AccountInvalidType},

	{services.ErrTransactionNotFound, errors.TransactionNotFound},
	{services.ErrCrossOwnership, errors.TransactionCrossOwnership},
	{services.ErrStaleAccountReference, errors.TransactionStaleAccount},

	{services.ErrCategoryNotFound, errors.CategoryNotFound},
	{services.ErrCategoryDuplicate, errors.CategoryDuplicate},

	{services.ErrBudgetNotFound, errors.BudgetNotFound},
	{services.ErrBudgetDuplicate, errors.BudgetDuplicate},
	{services.ErrBudgetInvalidCategory, errors.BudgetInvalidCategory},
	{models.ErrBudgetDateRange, errors.BudgetInvalidDateRange},

	{services.ErrGoalNotFound, errors.GoalNotFound},
	{services.ErrContributionNotFound, errors.GoalNotFound},
	{services.ErrGoalClosed, errors.GoalClosed},
	{services.ErrGoalContributionAmount, errors.GoalInvalidAmount},
	{models.ErrGoalTargetNotPositive, errors.GoalInvalidAmount},
	{services.ErrInvalidSourceAccount, errors.GoalInvalidSourceAccount},

	{services.ErrInsightNotFound, errors.InsightNotFound},
}

// modelValidationErrors are raised by model hooks and reported as plain
// validation failures
var modelValidationErrors = []error{
	models.ErrInvalidCurrencyCode,
	models.ErrAccountNameRequired,
	models.ErrInvalidBudgetPeriod,
	models.ErrNegativeLimit,
	models.ErrInvalidCategoryType,
	models.ErrCategoryNameRequired,
	models.ErrNegativeBudgetLimit,
	models.ErrInvalidGoalStatus,
	models.ErrGoalNameRequired,
	models.ErrNegativeMonthlyIncome,
	models.ErrInvalidDirection,
	models.ErrNonPositiveAmount,
	models.ErrAmountPrecision,
}

// SendServiceError translates an error returned by a service into the
// standard error response
func SendServiceError(c echo.Context, err error) error {
	var txnErr *services.TransactionValidationError
	if stderrors.As(err, &txnErr) {
		return sendTransactionValidationError(c, txnErr)
	}

	if stderrors.Is(err, services.ErrReferenceNotFound) {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	for _, mapping := range errorCodes {
		if stderrors.Is(err, mapping.err) {
			return SendError(c, mapping.code, errors.WithDetails(err.Error()))
		}
	}

	for _, validationErr := range modelValidationErrors {
		if stderrors.Is(err, validationErr) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationErr.Error()))
		}
	}

	return SendSystemError(c, err)
}

// sendTransactionValidationError reports every field that failed. A single
// failure keeps its specific code; several are reported together.
func sendTransactionValidationError(c echo.Context, verr *services.TransactionValidationError) error {
	details := formatFieldErrors(verr.FieldMessages())

	if len(verr.Fields) == 1 {
		switch err := verr.Fields[0].Err; {
		case stderrors.Is(err, services.ErrCrossOwnership):
			return SendError(c, errors.TransactionCrossOwnership, errors.WithDetails(details...))
		case stderrors.Is(err, services.ErrReferenceNotFound):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
		case stderrors.Is(err, services.ErrCurrencyMismatch):
			return SendError(c, errors.TransactionCurrencyMismatch, errors.WithDetails(details...))
		case stderrors.Is(err, services.ErrCategoryDirectionMismatch):
			return SendError(c, errors.TransactionCategoryDirectionMismatch, errors.WithDetails(details...))
		case stderrors.Is(err, services.ErrInvalidAmount):
			return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(details...))
		case stderrors.Is(err, models.ErrInvalidDirection):
			return SendError(c, errors.TransactionInvalidDirection, errors.WithDetails(details...))
		}
	}

	if stderrors.Is(verr, services.ErrCrossOwnership) {
		return SendError(c, errors.TransactionCrossOwnership, errors.WithDetails(details...))
	}
	return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(details...))
}
