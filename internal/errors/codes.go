package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
	AuthEmailAlreadyRegistered ErrorCode = "AUTH_007"
	AuthIdentityProviderDown   ErrorCode = "AUTH_008"
	AuthInvalidAPIKey          ErrorCode = "AUTH_009"
	AuthInvalidRefreshToken    ErrorCode = "AUTH_010"
	AuthWeakPassword           ErrorCode = "AUTH_011"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidQuery  ErrorCode = "VALIDATION_007"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound           ErrorCode = "PROFILE_001"
	ProfileInvalidPreferences ErrorCode = "PROFILE_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound       ErrorCode = "ACCOUNT_001"
	AccountDuplicateName  ErrorCode = "ACCOUNT_002"
	AccountInvalidType    ErrorCode = "ACCOUNT_003"
	AccountCurrencyLocked ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound                  ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount             ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed          ErrorCode = "TRANSACTION_003"
	TransactionInvalidDirection          ErrorCode = "TRANSACTION_004"
	TransactionCrossOwnership            ErrorCode = "TRANSACTION_005"
	TransactionCurrencyMismatch          ErrorCode = "TRANSACTION_006"
	TransactionCategoryDirectionMismatch ErrorCode = "TRANSACTION_007"
	TransactionStaleAccount              ErrorCode = "TRANSACTION_008"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound  ErrorCode = "CATEGORY_001"
	CategoryDuplicate ErrorCode = "CATEGORY_002"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound         ErrorCode = "BUDGET_001"
	BudgetDuplicate        ErrorCode = "BUDGET_002"
	BudgetInvalidDateRange ErrorCode = "BUDGET_003"
	BudgetInvalidCategory  ErrorCode = "BUDGET_004"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound             ErrorCode = "GOAL_001"
	GoalClosed               ErrorCode = "GOAL_002"
	GoalInvalidAmount        ErrorCode = "GOAL_003"
	GoalInvalidSourceAccount ErrorCode = "GOAL_004"
)

// Insight error codes (INSIGHT_*)
const (
	InsightNotFound ErrorCode = "INSIGHT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",
	AuthEmailAlreadyRegistered: "User already exists",
	AuthIdentityProviderDown:   "Identity provider is not available",
	AuthInvalidAPIKey:          "Missing or invalid API key",
	AuthInvalidRefreshToken:    "Refresh token is invalid or has been revoked",
	AuthWeakPassword:           "Password does not meet requirements",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Valid email required",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidQuery:  "Invalid query parameter",

	ProfileNotFound:           "Profile not found",
	ProfileInvalidPreferences: "Preferences must be a JSON object",

	AccountNotFound:       "Account not found",
	AccountDuplicateName:  "An account with this name already exists",
	AccountInvalidType:    "Invalid account type",
	AccountCurrencyLocked: "Currency cannot change once the account has transactions",

	TransactionNotFound:                  "Transaction not found",
	TransactionInvalidAmount:             "Amount must be greater than zero with at most two decimal places",
	TransactionValidationFailed:          "Transaction validation failed",
	TransactionInvalidDirection:          "Invalid transaction direction",
	TransactionCrossOwnership:            "Account and category must belong to the transaction owner",
	TransactionCurrencyMismatch:          "Transaction currency must match account currency",
	TransactionCategoryDirectionMismatch: "Category type must match transaction direction",
	TransactionStaleAccount:              "The referenced account no longer exists",

	CategoryNotFound:  "Category not found",
	CategoryDuplicate: "A category with this name and type already exists",

	BudgetNotFound:         "Budget not found",
	BudgetDuplicate:        "A budget for this category and period already exists",
	BudgetInvalidDateRange: "End date must be on or after start date",
	BudgetInvalidCategory:  "Budget category must be one of your expense categories",

	GoalNotFound:             "Goal not found",
	GoalClosed:               "Cannot contribute to a completed or canceled goal",
	GoalInvalidAmount:        "Amount must be greater than zero",
	GoalInvalidSourceAccount: "Source account must belong to the goal owner",

	InsightNotFound: "Insight not found",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
