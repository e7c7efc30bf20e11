package models

import "strconv"

// Profile is everything one load brings back.
type Profile struct {
	User     User
	XP       []Transaction
	Audit    AuditAggregate
	Grades   []Grade
	Projects []Transaction
}

func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
