package models

import "gorm.io/gorm"

// isColumnUpdate reports whether the statement writes an explicit column map
// (Update, Updates or UpdateColumns with a map) rather than a whole model.
// Update hooks skip validation for those.
func isColumnUpdate(tx *gorm.DB) bool {
	if tx == nil || tx.Statement == nil {
		return false
	}
	_, ok := tx.Statement.Dest.(map[string]interface{})
	return ok
}
