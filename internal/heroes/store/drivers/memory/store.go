// Package memory is the in-process hero store. It stands in for a remote
// database the same way the tutorial's in-memory web API does: nothing
// survives a restart.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
)

var errTxDone = errors.New("memory: transaction already committed or rolled back")

type Store struct {
	mu     sync.RWMutex
	heroes map[int]domain.Hero
	closed bool
}

func NewStore() *Store {
	return &Store{heroes: make(map[int]domain.Hero)}
}

func (s *Store) Heroes() store.Heroes { return &heroesRepo{lock: &s.mu, data: s.data} }

// data hands repositories the live map. It is a func so the repo always
// sees the map the last committed transaction swapped in.
func (s *Store) data() map[int]domain.Hero { return s.heroes }

func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return store.ErrClosed
	}
	return ctx.Err()
}

// Tx takes the write lock for the life of the transaction and works on a
// copy of the collection. Commit swaps the copy in.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, store.ErrClosed
	}

	return &txStore{parent: s, heroes: maps.Clone(s.heroes)}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

type txStore struct {
	parent *Store
	heroes map[int]domain.Hero
	done   bool
}

func (t *txStore) Heroes() store.Heroes {
	return &heroesRepo{lock: noLock{}, data: func() map[int]domain.Hero { return t.heroes }}
}

func (t *txStore) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.parent.heroes = t.heroes
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errTxDone
}

// rwLocker is the part of sync.RWMutex the repository needs; inside a
// transaction the lock is already held so it gets noLock.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noLock struct{}

func (noLock) Lock()    {}
func (noLock) Unlock()  {}
func (noLock) RLock()   {}
func (noLock) RUnlock() {}
