package models

import "time"

// Grade is a graded attempt on a curriculum object. Amount carries the XP the
// attempt earned when the backend reports it, and is zero otherwise.
type Grade struct {
	Grade     float64   `json:"grade"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	Object    Object    `json:"object"`
}

// Passed uses the platform's threshold: a grade of 1 or more is a pass.
func (g Grade) Passed() bool {
	return g.Grade >= 1
}
