package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/client/schema"
	"github.com/dmitrijs2005/xpboard/internal/client/token"
	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/dmitrijs2005/xpboard/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Labels prefixed to a failed sub-fetch of LoadProfile.
const (
	LabelUser     = "User info"
	LabelXP       = "XP data"
	LabelAudit    = "Audit data"
	LabelGrades   = "Grades data"
	LabelProjects = "Project XP"
)

// TokenSource yields the stored session token, if any.
type TokenSource interface {
	Retrieve(ctx context.Context) (string, bool)
}

// ProfileService fetches and shapes the authenticated user's data.
//
// Every method resolves the user from the stored token on its own. Without
// a token (or with an expired one) it fails with common.ErrNotAuthenticated;
// when the token carries no usable identity claim it fails with
// common.ErrIdentityUnavailable.
type ProfileService interface {
	FetchUser(ctx context.Context) (models.User, error)
	FetchXPTransactions(ctx context.Context) ([]models.Transaction, error)
	FetchCompletedProjectXP(ctx context.Context) ([]models.Transaction, error)
	FetchAuditRatio(ctx context.Context) (models.AuditAggregate, error)
	FetchProjectGrades(ctx context.Context) ([]models.Grade, error)
	LoadProfile(ctx context.Context) (*models.Profile, error)
}

type profileService struct {
	tokens   TokenSource
	backend  schema.Adapter
	excluded []string
	log      logging.Logger
	now      func() time.Time
}

// NewProfileService builds a ProfileService. excluded lists path prefixes
// stripped from completed-project XP.
func NewProfileService(tokens TokenSource, backend schema.Adapter, excluded []string, log logging.Logger) ProfileService {
	return &profileService{
		tokens:   tokens,
		backend:  backend,
		excluded: append([]string(nil), excluded...),
		log:      log,
		now:      time.Now,
	}
}

func (s *profileService) identity(ctx context.Context) (models.Identity, error) {
	tok, ok := s.tokens.Retrieve(ctx)
	if !ok {
		return models.Identity{}, common.ErrNotAuthenticated
	}

	payload, ok := token.Decode(tok)
	if !ok {
		return models.Identity{}, common.ErrIdentityUnavailable
	}
	if exp, ok := token.Expiry(payload); ok && !exp.After(s.now()) {
		return models.Identity{}, common.ErrNotAuthenticated
	}

	return token.SubjectID(payload)
}

func (s *profileService) FetchUser(ctx context.Context) (models.User, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return models.User{}, err
	}

	users, err := s.backend.LookupUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, common.ErrNotFound
	}
	return users[0], nil
}

func (s *profileService) projectXP(ctx context.Context) ([]models.Transaction, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}
	return s.backend.ListTransactions(ctx, schema.TransactionFilter{
		Identity:    id,
		Type:        models.TransactionXP,
		ProjectOnly: true,
	})
}

// FetchXPTransactions returns the user's project XP rows, oldest first.
func (s *profileService) FetchXPTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.projectXP(ctx)
}

// FetchCompletedProjectXP returns positive project XP outside the excluded
// path prefixes, largest amount first.
func (s *profileService) FetchCompletedProjectXP(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.projectXP(ctx)
	if err != nil {
		return nil, err
	}
	return CompletedProjects(txs, s.excluded), nil
}

func (s *profileService) FetchAuditRatio(ctx context.Context) (models.AuditAggregate, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return models.AuditAggregate{}, err
	}

	up, err := s.backend.AggregateTransactions(ctx, schema.TransactionFilter{
		Identity: id, Type: models.TransactionUp, ProjectOnly: true,
	})
	if err != nil {
		return models.AuditAggregate{}, err
	}
	down, err := s.backend.AggregateTransactions(ctx, schema.TransactionFilter{
		Identity: id, Type: models.TransactionDown, ProjectOnly: true,
	})
	if err != nil {
		return models.AuditAggregate{}, err
	}

	return NewAuditAggregate(up.Value, down.Value, up.Summed && down.Summed), nil
}

// FetchProjectGrades returns graded attempts on projects, oldest first. The
// backend cannot filter grades by object type, so that happens here.
func (s *profileService) FetchProjectGrades(ctx context.Context) ([]models.Grade, error) {
	id, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	grades, err := s.backend.ListGrades(ctx, schema.GradeFilter{Identity: id, MinGrade: 0})
	if err != nil {
		return nil, err
	}

	out := make([]models.Grade, 0, len(grades))
	for _, g := range grades {
		if g.Object.IsProject() {
			out = append(out, g)
		}
	}
	return out, nil
}

// LoadProfile runs every fetch concurrently. The first failure cancels the
// rest and is returned prefixed with its label; no partial profile is
// returned.
func (s *profileService) LoadProfile(ctx context.Context) (*models.Profile, error) {
	log := s.log.With("load_id", uuid.NewString())
	start := time.Now()

	var p models.Profile
	g, gctx := errgroup.WithContext(ctx)

	run := func(label string, fn func(context.Context) error) {
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			return nil
		})
	}

	run(LabelUser, func(ctx context.Context) (err error) {
		p.User, err = s.FetchUser(ctx)
		return err
	})
	run(LabelXP, func(ctx context.Context) (err error) {
		p.XP, err = s.FetchXPTransactions(ctx)
		return err
	})
	run(LabelAudit, func(ctx context.Context) (err error) {
		p.Audit, err = s.FetchAuditRatio(ctx)
		return err
	})
	run(LabelGrades, func(ctx context.Context) (err error) {
		p.Grades, err = s.FetchProjectGrades(ctx)
		return err
	})
	run(LabelProjects, func(ctx context.Context) (err error) {
		p.Projects, err = s.FetchCompletedProjectXP(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Warn(ctx, "profile load failed", "err", err, "duration", time.Since(start).String())
		return nil, err
	}

	log.Info(ctx, "profile loaded",
		"login", p.User.Login,
		"xp_rows", len(p.XP),
		"grades", len(p.Grades),
		"duration", time.Since(start).String(),
	)
	return &p, nil
}

// NewAuditAggregate applies the ratio policy: up/down when down is positive,
// +Inf when only up is, 0 when both are zero.
func NewAuditAggregate(up, down float64, summed bool) models.AuditAggregate {
	var ratio float64
	switch {
	case down > 0:
		ratio = up / down
	case up > 0:
		ratio = math.Inf(1)
	}

	rounded := ratio
	if !math.IsInf(ratio, 0) {
		rounded = math.Round(ratio*10) / 10
	}

	return models.AuditAggregate{Up: up, Down: down, Summed: summed, Ratio: ratio, Rounded: rounded}
}

// CompletedProjects keeps positive project XP whose path is outside every
// excluded prefix, sorted by amount descending.
func CompletedProjects(txs []models.Transaction, excluded []string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.Object.IsProject() || tx.Amount <= 0 || hasAnyPrefix(tx.Path, excluded) {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
