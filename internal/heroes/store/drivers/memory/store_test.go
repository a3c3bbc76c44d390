package memory_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/memory"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestHeroesRepository(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		st := memory.NewStore()
		t.Cleanup(func() { _ = st.Close() })
		return st
	})
}

func TestPingAfterClose(t *testing.T) {
	st := memory.NewStore()
	require.NoError(t, st.Close())
	require.ErrorIs(t, st.Ping(context.Background()), store.ErrClosed)

	_, err := st.Tx(context.Background())
	require.ErrorIs(t, err, store.ErrClosed)
}

func TestTxIsSingleUse(t *testing.T) {
	st := memory.NewStore()

	tx, err := st.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.Error(t, tx.Rollback())

	// The lock was released on commit, so the store is usable again.
	_, err = st.Heroes().CreateHero(context.Background(), "Free")
	require.NoError(t, err)
}
