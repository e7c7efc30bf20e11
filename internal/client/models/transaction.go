package models

import "time"

// ObjectTypeProject marks curriculum objects that are full projects.
const ObjectTypeProject = "project"

// TransactionType is the kind of a ledger row.
type TransactionType string

const (
	TransactionXP   TransactionType = "xp"
	TransactionUp   TransactionType = "up"
	TransactionDown TransactionType = "down"
)

// Object is a curriculum entity (project, exercise, module).
type Object struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (o Object) IsProject() bool {
	return o.Type == ObjectTypeProject
}

// Transaction is one XP (or audit) ledger row. Amount is in byte-like units.
type Transaction struct {
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	Path      string    `json:"path"`
	ObjectID  int64     `json:"objectId"`
	Object    Object    `json:"object"`
}

// XPPoint is one sample of the cumulative XP curve.
type XPPoint struct {
	At    time.Time
	Total int64
}
