package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
)

type objectRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *objectRow) model() models.Object {
	if r == nil {
		return models.Object{}
	}
	return models.Object{ID: r.ID, Name: r.Name, Type: r.Type}
}

type userRow struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt timestamp `json:"createdAt"`
}

type transactionRow struct {
	Amount    float64    `json:"amount"`
	CreatedAt timestamp  `json:"createdAt"`
	Path      string     `json:"path"`
	ObjectID  int64      `json:"objectId"`
	Object    *objectRow `json:"object"`
}

type gradeRow struct {
	Grade     *float64   `json:"grade"`
	Amount    float64    `json:"amount"`
	CreatedAt timestamp  `json:"createdAt"`
	Object    *objectRow `json:"object"`
}

type aggregateRow struct {
	Aggregate struct {
		Sum *struct {
			Amount *float64 `json:"amount"`
		} `json:"sum"`
		Count int64 `json:"count"`
	} `json:"aggregate"`
}

func (b *Backend) run(ctx context.Context, doc string, vars map[string]any, out any) error {
	data, err := b.q.Query(ctx, doc, vars)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", b.d.name, err)
	}
	return nil
}

func (b *Backend) LookupUser(ctx context.Context, id models.Identity) ([]models.User, error) {
	doc, vars, err := userQuery(id)
	if err != nil {
		return nil, err
	}

	var resp struct {
		User []userRow `json:"user"`
	}
	if err := b.run(ctx, doc, vars, &resp); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(resp.User))
	for _, r := range resp.User {
		users = append(users, models.User{
			ID:        r.ID,
			Login:     r.Login,
			Email:     r.Email,
			CreatedAt: r.CreatedAt.Time,
		})
	}
	return users, nil
}

func (b *Backend) ListTransactions(ctx context.Context, f TransactionFilter) ([]models.Transaction, error) {
	doc, vars, err := b.d.transactionsQuery(f)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Transaction []transactionRow `json:"transaction"`
	}
	if err := b.run(ctx, doc, vars, &resp); err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(resp.Transaction))
	for _, r := range resp.Transaction {
		obj := r.Object.model()
		if obj.ID == 0 {
			obj.ID = r.ObjectID
		}
		txs = append(txs, models.Transaction{
			Amount:    int64(math.Round(r.Amount)),
			CreatedAt: r.CreatedAt.Time,
			Path:      r.Path,
			ObjectID:  r.ObjectID,
			Object:    obj,
		})
	}
	return txs, nil
}

func (b *Backend) AggregateTransactions(ctx context.Context, f TransactionFilter) (AggregateResult, error) {
	doc, vars, err := b.d.aggregateQuery(f)
	if err != nil {
		return AggregateResult{}, err
	}

	var resp struct {
		Agg aggregateRow `json:"transaction_aggregate"`
	}
	if err := b.run(ctx, doc, vars, &resp); err != nil {
		return AggregateResult{}, err
	}

	if !b.d.summable {
		return AggregateResult{Value: float64(resp.Agg.Aggregate.Count)}, nil
	}
	// sum over zero rows comes back as null
	var v float64
	if s := resp.Agg.Aggregate.Sum; s != nil && s.Amount != nil {
		v = *s.Amount
	}
	return AggregateResult{Value: v, Summed: true}, nil
}

func (b *Backend) ListGrades(ctx context.Context, f GradeFilter) ([]models.Grade, error) {
	doc, vars, err := b.d.gradesQuery(f)
	if err != nil {
		return nil, err
	}

	var resp map[string][]gradeRow
	if err := b.run(ctx, doc, vars, &resp); err != nil {
		return nil, err
	}

	rows := resp[b.d.gradeEntity]
	grades := make([]models.Grade, 0, len(rows))
	for _, r := range rows {
		// ungraded attempts carry a null grade
		if r.Grade == nil {
			continue
		}
		grades = append(grades, models.Grade{
			Grade:     *r.Grade,
			Amount:    int64(math.Round(r.Amount)),
			CreatedAt: r.CreatedAt.Time,
			Object:    r.Object.model(),
		})
	}
	return grades, nil
}

func (b *Backend) LookupObject(ctx context.Context, id int64) (models.Object, bool, error) {
	var resp struct {
		Object []objectRow `json:"object"`
	}
	if err := b.run(ctx, objectQuery, map[string]any{"objectId": id}, &resp); err != nil {
		return models.Object{}, false, err
	}
	if len(resp.Object) == 0 {
		return models.Object{}, false, nil
	}
	return resp.Object[0].model(), true, nil
}

// timestamp accepts Hasura's timestamptz as well as zone-less timestamps.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
