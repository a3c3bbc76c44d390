package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/memory"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// countingStore records how often the repository is reached so tests can
// assert that short-circuits really skip the store.
type countingStore struct {
	store.Store
	calls int
}

func (c *countingStore) Heroes() store.Heroes {
	c.calls++
	return c.Store.Heroes()
}

func newSeededService(t *testing.T) (*HeroService, *countingStore) {
	t.Helper()

	st := &countingStore{Store: memory.NewStore()}
	seed := &SeedService{Store: st, Logger: slogx.Discard()}
	require.NoError(t, seed.Seed(context.Background()))
	st.calls = 0

	return &HeroService{Store: st}, st
}

func TestSearchHeroes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("blank terms skip the store", func(t *testing.T) {
		svc, st := newSeededService(t)

		for _, term := range []string{"", "   ", "\t"} {
			heroes, err := svc.SearchHeroes(ctx, term)
			require.NoError(t, err)
			require.NotNil(t, heroes)
			require.Empty(t, heroes)
		}
		require.Zero(t, st.calls)
	})

	t.Run("terms are trimmed before matching", func(t *testing.T) {
		svc, _ := newSeededService(t)

		heroes, err := svc.SearchHeroes(ctx, "  nice ")
		require.NoError(t, err)
		require.Equal(t, []domain.Hero{{ID: 11, Name: "Dr Nice"}}, heroes)
	})
}

func TestCreateHero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("trims and assigns id", func(t *testing.T) {
		svc, _ := newSeededService(t)

		h, err := svc.CreateHero(ctx, "  Windstorm  ")
		require.NoError(t, err)
		require.Equal(t, domain.Hero{ID: 21, Name: "Windstorm"}, h)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		svc, st := newSeededService(t)

		_, err := svc.CreateHero(ctx, "   ")
		require.ErrorIs(t, err, ErrInvalidHero)
		require.Zero(t, st.calls)
	})

	t.Run("rejects overlong names", func(t *testing.T) {
		svc, _ := newSeededService(t)

		_, err := svc.CreateHero(ctx, strings.Repeat("x", 129))
		require.ErrorIs(t, err, ErrInvalidHero)
	})
}

func TestUpdateHero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newSeededService(t)

	require.NoError(t, svc.UpdateHero(ctx, domain.Hero{ID: 14, Name: " Celeritas Prime "}))
	got, err := svc.GetHero(ctx, 14)
	require.NoError(t, err)
	require.Equal(t, "Celeritas Prime", got.Name)

	err = svc.UpdateHero(ctx, domain.Hero{ID: 999, Name: "Ghost"})
	require.ErrorIs(t, err, ErrHeroNotFound)

	err = svc.UpdateHero(ctx, domain.Hero{Name: "No id"})
	require.ErrorIs(t, err, ErrInvalidHero)

	err = svc.UpdateHero(ctx, domain.Hero{ID: 14, Name: ""})
	require.ErrorIs(t, err, ErrInvalidHero)
}

func TestGetAndDeleteHero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newSeededService(t)

	_, err := svc.GetHero(ctx, 999)
	require.ErrorIs(t, err, ErrHeroNotFound)

	h, err := svc.DeleteHero(ctx, 20)
	require.NoError(t, err)
	require.Equal(t, "Tornado", h.Name)

	_, err = svc.DeleteHero(ctx, 20)
	require.ErrorIs(t, err, ErrHeroNotFound)

	heroes, err := svc.ListHeroes(ctx)
	require.NoError(t, err)
	require.Len(t, heroes, 9)
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := memory.NewStore()
	seed := &SeedService{Store: st, Logger: slogx.Discard()}
	require.NoError(t, seed.Seed(ctx))

	_, err := st.Heroes().DeleteHero(ctx, 11)
	require.NoError(t, err)
	require.NoError(t, seed.Seed(ctx))

	heroes, err := st.Heroes().ListHeroes(ctx)
	require.NoError(t, err)
	require.Len(t, heroes, 9)
}
