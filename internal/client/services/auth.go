// Package services contains application services for the xpboard client.
// This file defines the authentication service: sign-in, sign-out and
// session checks over the local session store.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/client/session"
	"github.com/dmitrijs2005/xpboard/internal/client/token"
	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/dmitrijs2005/xpboard/internal/logging"
)

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, password string) (string, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and persist it.
//   - Logout: clear the stored token. Safe to call when logged out.
//   - IsAuthenticated: a token is stored and not expired. An expired token
//     is cleared as a side effect.
//   - Identity: the identity claim of the stored token.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Identity(ctx context.Context) (models.Identity, time.Time, error)
}

type authService struct {
	auth  Authenticator
	store session.Store
	log   logging.Logger
	now   func() time.Time
}

// NewAuthService constructs an AuthService bound to the given sign-in
// client and session store.
func NewAuthService(auth Authenticator, store session.Store, log logging.Logger) AuthService {
	return &authService{auth: auth, store: store, log: log, now: time.Now}
}

func (a *authService) Login(ctx context.Context, identifier, password string) error {
	tok, err := a.auth.Authenticate(ctx, identifier, password)
	if err != nil {
		return err
	}
	if err := a.store.Persist(ctx, tok); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	tok, ok := a.store.Retrieve(ctx)
	if !ok {
		return false
	}
	if token.IsValid(tok, a.now()) {
		return true
	}

	a.log.Info(ctx, "stored session is no longer valid, clearing it")
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "clearing stale session", "err", err)
	}
	return false
}

// Identity returns the stored token's identity and its expiry (zero when the
// token has none).
func (a *authService) Identity(ctx context.Context) (models.Identity, time.Time, error) {
	tok, ok := a.store.Retrieve(ctx)
	if !ok {
		return models.Identity{}, time.Time{}, common.ErrNotAuthenticated
	}
	payload, ok := token.Decode(tok)
	if !ok {
		return models.Identity{}, time.Time{}, common.ErrIdentityUnavailable
	}
	id, err := token.SubjectID(payload)
	if err != nil {
		return models.Identity{}, time.Time{}, err
	}
	exp, _ := token.Expiry(payload)
	return id, exp, nil
}
