package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"budgetbuddy/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with the budgetbuddy rules and
// error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("direction", validateDirection)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("goal_status", validateGoalStatus)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("money", validateMoney)

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate runs struct validation and returns validator.ValidationErrors on failure
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into field -> message. Errors that
// are not validator errors yield nil.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "money":
		return "Enter a positive amount with at most two decimal places."
	case "currency_code":
		return "Enter a three letter currency code."
	case "direction":
		return fmt.Sprintf("Must be one of: %s.", strings.Join(models.Directions(), ", "))
	case "category_type":
		return fmt.Sprintf("Must be one of: %s, %s.", models.CategoryTypeExpense, models.CategoryTypeIncome)
	case "account_type":
		return fmt.Sprintf("Must be one of: %s.", strings.Join(models.AccountTypes(), ", "))
	case "budget_period":
		return "Must be one of: monthly, weekly, yearly, custom."
	case "goal_status":
		return "Must be one of: active, paused, completed, canceled."
	default:
		return fmt.Sprintf("Failed the %s rule.", fe.Tag())
	}
}

func validateDirection(fl validator.FieldLevel) bool {
	return models.IsValidDirection(fl.Field().String())
}

func validateCategoryType(fl validator.FieldLevel) bool {
	return models.IsValidCategoryType(fl.Field().String())
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(strings.ToLower(fl.Field().String()))
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	return models.IsValidBudgetPeriod(fl.Field().String())
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	return models.IsValidGoalStatus(fl.Field().String())
}

// validateCurrencyCode accepts ISO-4217 style codes in either case
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrencyCode(strings.ToUpper(fl.Field().String()))
}

// validateMoney accepts a positive amount with at most two decimal places.
// The field may be a decimal (via the custom type func) or a string.
func validateMoney(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return models.ValidateAmount(amount) == nil
}
