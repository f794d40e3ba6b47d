package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Page is limit/offset pagination. A zero Limit means DefaultPageLimit.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) Normalized() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

type CategoryFilters struct {
	Type     string
	Search   string
	Ordering string
	Page
}

var CategoryOrderings = map[string]string{
	"name":       "name",
	"updated_at": "updated_at",
}

type BudgetFilters struct {
	Period     string
	CategoryID *uuid.UUID
	Ordering   string
	Page
}

var BudgetOrderings = map[string]string{
	"start_date": "start_date",
	"end_date":   "end_date",
	"updated_at": "updated_at",
}

type GoalFilters struct {
	Status string
	Page
}

type InsightFilters struct {
	Acknowledged *bool
	Page
}

// OrderClause turns an ordering parameter such as "-amount" into an ORDER BY
// clause, accepting only keys present in allowed. Empty input yields fallback.
func OrderClause(ordering string, allowed map[string]string, fallback string) (string, error) {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		return fallback, nil
	}

	direction := "ASC"
	key := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		key = ordering[1:]
	}

	column, ok := allowed[key]
	if !ok {
		return "", fmt.Errorf("unsupported ordering %q", ordering)
	}

	return fmt.Sprintf("%s %s, id ASC", column, direction), nil
}
