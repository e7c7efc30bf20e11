// Package session owns the bearer token's storage lifecycle.
package session

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/xpboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/dmitrijs2005/xpboard/internal/logging"
)

// TokenKey is the storage key the token lives under.
const TokenKey = common.SessionTokenKey

// Store persists, retrieves and clears the session token.
//
// Contract:
//   - Persist with an empty token is a no-op that only logs.
//   - Retrieve never fails; storage errors read as "absent".
//   - Clear is idempotent.
type Store interface {
	Persist(ctx context.Context, token string) error
	Retrieve(ctx context.Context) (string, bool)
	Clear(ctx context.Context) error
}

// KVStore is a Store backed by a metadata.Repository.
type KVStore struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewKVStore(repo metadata.Repository, log logging.Logger) *KVStore {
	return &KVStore{repo: repo, log: log}
}

// NewMemoryStore returns a Store that never touches the disk.
func NewMemoryStore(log logging.Logger) *KVStore {
	return NewKVStore(metadata.NewMemoryRepository(), log)
}

func (s *KVStore) Persist(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		s.log.Warn(ctx, "refusing to persist empty session token")
		return nil
	}
	return s.repo.Set(ctx, TokenKey, []byte(token))
}

func (s *KVStore) Retrieve(ctx context.Context) (string, bool) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		s.log.Error(ctx, "reading session token", "err", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *KVStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, TokenKey)
}
