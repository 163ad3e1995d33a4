package team_test

import (
	"net/http"
	"testing"

	"github.com/gridline/crewhub/pkg/teamsdk"
)

// TestRateLimitAcceptEndpoint verifies that invitation redemption is rate
// limited by IP. The strict profile (5 req/min) exists to make token guessing
// impractical.
func TestRateLimitAcceptEndpoint(t *testing.T) {
	baseURL, cleanup := setupTeamContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)
	user := client.AsActor(newUserID())

	// The first 5 guesses fail as not_found, the 6th trips the limiter.
	var lastErr error
	for i := range 6 {
		_, err := user.AcceptInvitation(t.Context(), "guess-attempt")
		if i < 5 {
			requireAPIError(t, err, http.StatusNotFound, "not_found")
		} else {
			lastErr = err
		}
	}

	requireAPIError(t, lastErr, http.StatusTooManyRequests, "rate_limit_exceeded")
}
