package team_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/pkg/teamsdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)

	t.Run("liveness reports ok", func(t *testing.T) {
		health, err := client.GetLiveness(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
		require.NotEmpty(t, health.Uptime)
	})

	t.Run("readiness reports database ok", func(t *testing.T) {
		health, err := client.GetReadiness(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
