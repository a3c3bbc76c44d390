package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
)

// SeedService loads the mock roster into an empty store at startup.
type SeedService struct {
	Store  store.Store
	Logger *slog.Logger
}

// Seed is a no-op when the store already holds heroes, so restarting against
// a sqlite file keeps whatever users did to the roster.
func (s *SeedService) Seed(ctx context.Context) error {
	var inserted int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Heroes().Seed(ctx, domain.MockHeroes())
		inserted = n
		return err
	})
	if err != nil {
		return err
	}

	if inserted > 0 {
		s.Logger.Info("seeded hero roster", "heroes", inserted)
	} else {
		s.Logger.Debug("hero store already populated, skipping seed")
	}
	return nil
}
