package repositories

import (
	"errors"
	"fmt"
	"strings"

	"budgetbuddy/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}

func paginate(query *gorm.DB, page models.Page) *gorm.DB {
	page = page.Normalized()
	return query.Offset(page.Offset).Limit(page.Limit)
}

// containsPattern builds a case-insensitive LIKE pattern, escaping wildcards
// in the user input.
func containsPattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}

// ErrInvalidOrdering wraps an ordering key that is not whitelisted.
var ErrInvalidOrdering = errors.New("invalid ordering")

func orderClause(ordering string, allowed map[string]string, fallback string) (string, error) {
	clause, err := models.OrderClause(ordering, allowed, fallback)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOrdering, err)
	}
	return clause, nil
}

// decimalRow scans a single aggregated money value. Aggregates are rounded to
// the storage scale because sqlite sums decimals as floats.
type decimalRow struct {
	Total decimal.Decimal
}

func (r decimalRow) value() decimal.Decimal {
	return r.Total.Round(models.AmountScale)
}
