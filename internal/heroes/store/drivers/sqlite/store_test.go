package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/sqlite"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestHeroesRepository(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		st, err := sqlite.NewStore(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		require.NoError(t, st.ApplyMigrations())
		return st
	})
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "heroes.db") + "?_pragma=busy_timeout(5000)"

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations())
}
