package models

// AccountFilters contains filter criteria for account queries
type AccountFilters struct {
	Type     string
	IsActive *bool
	Currency string
	Search   string
	Ordering string
	Page
}

// AccountOrderings whitelists the ordering keys accepted for accounts.
var AccountOrderings = map[string]string{
	"name":       "name",
	"updated_at": "updated_at",
	"balance":    "balance",
}
