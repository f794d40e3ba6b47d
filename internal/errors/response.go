package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the JSON envelope every failed request returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) { er.Error.Details = details }
}

// WithMessage replaces the catalogue message for the code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) { er.Error.Message = message }
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	er := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		Details: []string{},
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(er)
	}
	return er
}

// NewValidationError renders field errors as "field: message" details,
// ordered by field name so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = fmt.Sprintf("%s: %s", field, fieldErrors[field])
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001 and hands err back for logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var statusByCode = map[int][]ErrorCode{
	http.StatusBadRequest: {
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidEmail, ValidationInvalidDate,
		ValidationInvalidQuery, ProfileInvalidPreferences, AccountInvalidType,
		TransactionInvalidAmount, TransactionInvalidDirection, AuthWeakPassword,
		BudgetInvalidDateRange, GoalInvalidAmount,
	},
	http.StatusUnauthorized: {
		AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken,
		AuthInvalidTokenFormat, AuthInvalidRefreshToken,
	},
	http.StatusForbidden: {
		AuthInsufficientPermission, AuthAccountLocked, AuthInvalidAPIKey,
		TransactionCrossOwnership,
	},
	http.StatusNotFound: {
		ProfileNotFound, AccountNotFound, TransactionNotFound, CategoryNotFound,
		BudgetNotFound, GoalNotFound, InsightNotFound, SystemRouteNotFound,
	},
	http.StatusConflict: {
		AuthEmailAlreadyRegistered, AccountDuplicateName, CategoryDuplicate,
		BudgetDuplicate, TransactionStaleAccount,
	},
	http.StatusUnprocessableEntity: {
		TransactionValidationFailed, TransactionCurrencyMismatch,
		TransactionCategoryDirectionMismatch, BudgetInvalidCategory,
		GoalClosed, GoalInvalidSourceAccount, AccountCurrencyLocked,
	},
	http.StatusTooManyRequests:    {SystemRateLimitExceeded},
	http.StatusServiceUnavailable: {SystemServiceUnavailable, AuthIdentityProviderDown},
}

var httpStatus = func() map[ErrorCode]int {
	index := make(map[ErrorCode]int)
	for status, codes := range statusByCode {
		for _, code := range codes {
			index[code] = status
		}
	}
	return index
}()

// GetHTTPStatus maps a code to its response status. Unlisted codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
