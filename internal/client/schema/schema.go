// Package schema hides the backend's GraphQL schema behind abstract
// operations. The platform has shipped more than one schema over time
// (grades in progress vs result, userId column vs user relation), so each
// variant is a dialect of the same Backend.
package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
)

// Querier sends one GraphQL document and returns the data field.
type Querier interface {
	Query(ctx context.Context, document string, variables map[string]any) (json.RawMessage, error)
}

// TransactionFilter selects ledger rows for one user.
type TransactionFilter struct {
	Identity    models.Identity
	Type        models.TransactionType
	ProjectOnly bool
}

// GradeFilter selects graded attempts for one user with Grade >= MinGrade.
type GradeFilter struct {
	Identity models.Identity
	MinGrade float64
}

// AggregateResult is a summed amount when Summed is true, otherwise a row count.
type AggregateResult struct {
	Value  float64
	Summed bool
}

// Adapter is what the profile service needs from the backend. Lists come
// back ordered by creation time ascending.
type Adapter interface {
	LookupUser(ctx context.Context, id models.Identity) ([]models.User, error)
	ListTransactions(ctx context.Context, f TransactionFilter) ([]models.Transaction, error)
	AggregateTransactions(ctx context.Context, f TransactionFilter) (AggregateResult, error)
	ListGrades(ctx context.Context, f GradeFilter) ([]models.Grade, error)
	LookupObject(ctx context.Context, id int64) (models.Object, bool, error)
}

const (
	NameProgress = "progress"
	NameResult   = "result"
)

// dialect captures where two schema revisions disagree.
type dialect struct {
	name string
	// gradeEntity is the table graded attempts live in.
	gradeEntity string
	// userRelation joins on user{id|login} instead of the userId column.
	userRelation bool
	// summable reports whether transaction_aggregate supports sum.
	summable bool
}

var (
	progressDialect = dialect{name: NameProgress, gradeEntity: "progress", summable: true}
	resultDialect   = dialect{name: NameResult, gradeEntity: "result", userRelation: true}
)

// Backend implements Adapter by issuing GraphQL documents through a Querier.
type Backend struct {
	q Querier
	d dialect
}

// NewProgressSchema joins on userId, reads grades from progress and sums
// audit amounts.
func NewProgressSchema(q Querier) *Backend {
	return &Backend{q: q, d: progressDialect}
}

// NewResultSchema joins through the user relation, reads grades from result
// and can only count audit rows.
func NewResultSchema(q Querier) *Backend {
	return &Backend{q: q, d: resultDialect}
}

// New picks a dialect by name.
func New(name string, q Querier) (*Backend, error) {
	switch name {
	case NameProgress, "":
		return NewProgressSchema(q), nil
	case NameResult:
		return NewResultSchema(q), nil
	default:
		return nil, fmt.Errorf("unknown schema %q", name)
	}
}

func (b *Backend) Name() string {
	return b.d.name
}

var _ Adapter = (*Backend)(nil)
