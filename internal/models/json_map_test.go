package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBMap_Value(t *testing.T) {
	cases := map[string]struct {
		in   JSONBMap
		want interface{}
	}{
		"nil is NULL":         {in: nil, want: nil},
		"empty is {}":         {in: JSONBMap{}, want: "{}"},
		"snapshot is encoded": {in: JSONBMap{"direction": "income"}, want: `{"direction":"income"}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.in.Value()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJSONBMap_Scan(t *testing.T) {
	var m JSONBMap

	require.NoError(t, m.Scan([]byte(`{"amount":"10.00"}`)))
	assert.Equal(t, "10.00", m["amount"])

	require.NoError(t, m.Scan(`{"is_pending":true}`))
	assert.Equal(t, JSONBMap{"is_pending": true}, m)

	require.NoError(t, m.Scan(""))
	assert.Nil(t, m)

	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	assert.Error(t, m.Scan(42))
	assert.Error(t, m.Scan(`[1,2]`))
}

func TestJSONBMap_JSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Preferences JSONBMap `json:"preferences"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"preferences":null}`, string(raw))

	var m JSONBMap
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark"}`), &m))
	assert.Equal(t, "dark", m["theme"])

	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &m))
}

func TestAuditLog_BeforeCreateDefaults(t *testing.T) {
	entry := &AuditLog{Action: AuditActionDelete, Resource: AuditResourceTransaction}
	require.NoError(t, entry.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.WithinDuration(t, time.Now().UTC(), entry.CreatedAt, time.Second)
	assert.NotNil(t, entry.Changes)
	assert.Equal(t, "audit_logs", entry.TableName())
}
