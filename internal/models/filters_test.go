package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		ordering string
		expected string
		wantErr  bool
	}{
		{"empty uses fallback", "", "txn_time DESC, id ASC", false},
		{"ascending", "amount", "amount ASC, id ASC", false},
		{"descending", "-created_at", "created_at DESC, id ASC", false},
		{"unknown column", "balance", "", true},
		{"injection attempt", "amount; DROP TABLE users", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderClause(tt.ordering, TransactionOrderings, "txn_time DESC, id ASC")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPage_Normalized(t *testing.T) {
	assert.Equal(t, Page{Limit: DefaultPageLimit}, Page{}.Normalized())
	assert.Equal(t, Page{Limit: MaxPageLimit, Offset: 10}, Page{Limit: 10000, Offset: 10}.Normalized())
	assert.Equal(t, Page{Limit: 5}, Page{Limit: 5, Offset: -3}.Normalized())
}
