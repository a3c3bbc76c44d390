package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
)

var (
	ErrNotFound = errors.New("store: not found")
	ErrClosed   = errors.New("store: closed")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement this. Repositories hang off it as methods so a Tx-scoped Store
// hands out Tx-scoped repositories and nobody opens a transaction inside a
// transaction by accident.
type Store interface {
	Heroes() Heroes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It commits when fn returns
	// nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Heroes interface {
	// ListHeroes returns every hero ordered by id.
	ListHeroes(ctx context.Context) ([]domain.Hero, error)

	// GetHeroByID returns ErrNotFound when no hero has the id.
	GetHeroByID(ctx context.Context, id int) (domain.Hero, error)

	// SearchHeroesByName matches term as a case-insensitive substring of the
	// name. Results are ordered by id.
	SearchHeroesByName(ctx context.Context, term string) ([]domain.Hero, error)

	// CreateHero stores a hero under the next free id (max+1, or
	// domain.FirstHeroID for an empty collection) and returns it.
	CreateHero(ctx context.Context, name string) (domain.Hero, error)

	// UpdateHero replaces the hero with h.ID. ErrNotFound when absent.
	UpdateHero(ctx context.Context, h domain.Hero) error

	// DeleteHero removes the hero and returns what was removed.
	DeleteHero(ctx context.Context, id int) (domain.Hero, error)

	// Seed inserts heroes with their ids as given, but only when the
	// collection is empty. A repeated id keeps its first occurrence. It
	// returns the number of heroes inserted.
	Seed(ctx context.Context, heroes []domain.Hero) (int, error)

	// IsEmpty returns true if there are no heroes.
	IsEmpty(ctx context.Context) (bool, error)
}
