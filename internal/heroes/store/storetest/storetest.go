// Package storetest holds the behaviour every store driver must share.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/stretchr/testify/require"
)

// Run exercises the Heroes repository of fresh stores produced by newStore.
// Each subtest gets its own store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()
	ctx := context.Background()

	seeded := func(t *testing.T) store.Store {
		st := newStore(t)
		n, err := st.Heroes().Seed(ctx, domain.MockHeroes())
		require.NoError(t, err)
		require.Equal(t, 10, n)
		return st
	}

	t.Run("empty store", func(t *testing.T) {
		st := newStore(t)

		empty, err := st.Heroes().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)

		heroes, err := st.Heroes().ListHeroes(ctx)
		require.NoError(t, err)
		require.NotNil(t, heroes)
		require.Empty(t, heroes)
	})

	t.Run("first created hero gets id 11", func(t *testing.T) {
		st := newStore(t)

		h, err := st.Heroes().CreateHero(ctx, "Windstorm")
		require.NoError(t, err)
		require.Equal(t, domain.Hero{ID: domain.FirstHeroID, Name: "Windstorm"}, h)
	})

	t.Run("seed only applies to an empty store", func(t *testing.T) {
		st := seeded(t)

		n, err := st.Heroes().Seed(ctx, []domain.Hero{{ID: 99, Name: "Late"}})
		require.NoError(t, err)
		require.Zero(t, n)

		_, err = st.Heroes().GetHeroByID(ctx, 99)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		st := seeded(t)

		heroes, err := st.Heroes().ListHeroes(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.MockHeroes(), heroes)
	})

	t.Run("create assigns max id plus one", func(t *testing.T) {
		st := seeded(t)

		h, err := st.Heroes().CreateHero(ctx, "Windstorm")
		require.NoError(t, err)
		require.Equal(t, 21, h.ID)

		got, err := st.Heroes().GetHeroByID(ctx, 21)
		require.NoError(t, err)
		require.Equal(t, h, got)
	})

	t.Run("get missing hero", func(t *testing.T) {
		st := seeded(t)

		_, err := st.Heroes().GetHeroByID(ctx, 999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("search is a case-insensitive substring match", func(t *testing.T) {
		st := seeded(t)

		heroes, err := st.Heroes().SearchHeroesByName(ctx, "MA")
		require.NoError(t, err)
		require.Equal(t, []domain.Hero{
			{ID: 15, Name: "Magneta"},
			{ID: 16, Name: "RubberMan"},
			{ID: 17, Name: "Dynama"},
			{ID: 19, Name: "Magma"},
		}, heroes)

		none, err := st.Heroes().SearchHeroesByName(ctx, "zzz")
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		st := seeded(t)

		heroes, err := st.Heroes().SearchHeroesByName(ctx, "%")
		require.NoError(t, err)
		require.Empty(t, heroes)
	})

	t.Run("search folds non-ASCII case", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Heroes().Seed(ctx, []domain.Hero{
			{ID: 11, Name: "Émile"},
			{ID: 12, Name: "ÅSA"},
			{ID: 13, Name: "Narco"},
		})
		require.NoError(t, err)

		heroes, err := st.Heroes().SearchHeroesByName(ctx, "émi")
		require.NoError(t, err)
		require.Equal(t, []domain.Hero{{ID: 11, Name: "Émile"}}, heroes)

		heroes, err = st.Heroes().SearchHeroesByName(ctx, "ås")
		require.NoError(t, err)
		require.Equal(t, []domain.Hero{{ID: 12, Name: "ÅSA"}}, heroes)
	})

	t.Run("seed counts only inserted heroes", func(t *testing.T) {
		st := newStore(t)

		n, err := st.Heroes().Seed(ctx, []domain.Hero{
			{ID: 11, Name: "Dr Nice"},
			{ID: 11, Name: "Dr Nice again"},
			{ID: 12, Name: "Narco"},
		})
		require.NoError(t, err)
		require.Equal(t, 2, n)

		got, err := st.Heroes().GetHeroByID(ctx, 11)
		require.NoError(t, err)
		require.Equal(t, "Dr Nice", got.Name)
	})

	t.Run("update replaces the name", func(t *testing.T) {
		st := seeded(t)

		require.NoError(t, st.Heroes().UpdateHero(ctx, domain.Hero{ID: 12, Name: "Narco II"}))

		got, err := st.Heroes().GetHeroByID(ctx, 12)
		require.NoError(t, err)
		require.Equal(t, "Narco II", got.Name)

		err = st.Heroes().UpdateHero(ctx, domain.Hero{ID: 999, Name: "Nobody"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete returns the removed hero", func(t *testing.T) {
		st := seeded(t)

		h, err := st.Heroes().DeleteHero(ctx, 13)
		require.NoError(t, err)
		require.Equal(t, domain.Hero{ID: 13, Name: "Bombasto"}, h)

		_, err = st.Heroes().DeleteHero(ctx, 13)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ids are not reused below the max", func(t *testing.T) {
		st := seeded(t)

		_, err := st.Heroes().DeleteHero(ctx, 11)
		require.NoError(t, err)

		h, err := st.Heroes().CreateHero(ctx, "Newcomer")
		require.NoError(t, err)
		require.Equal(t, 21, h.ID)
	})

	t.Run("WithTx rolls back on error", func(t *testing.T) {
		st := seeded(t)
		boom := errors.New("boom")

		err := st.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Heroes().DeleteHero(ctx, 11); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = st.Heroes().GetHeroByID(ctx, 11)
		require.NoError(t, err)
	})

	t.Run("WithTx commits on success", func(t *testing.T) {
		st := seeded(t)

		err := st.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Heroes().CreateHero(ctx, "Committed")
			return err
		})
		require.NoError(t, err)

		got, err := st.Heroes().GetHeroByID(ctx, 21)
		require.NoError(t, err)
		require.Equal(t, "Committed", got.Name)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(ctx))
	})
}
