package heroes_test

import (
	"testing"

	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupHeroesContainer(t, nil)
	defer cleanup()

	client := heroesdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check includes the store.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupHeroesContainer(t, nil)
	defer cleanup()

	client := heroesdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Store)
}
