package team_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gridline/crewhub/pkg/idx"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

/*
 * Common constants and helper functions for team service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "crewhub-team-test:latest"

	ownerEmail = "owner@example.com"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Team Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Team Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/team/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupTeamContainer starts the team service in a container and returns the
// base URL. Rate limits are relaxed so rapid test requests don't trip them;
// rate limit behaviour itself is covered by setupTeamContainerWithDefaultRateLimits.
func setupTeamContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TEAM_DATABASE_FILE": "/tmp/team.db",
			"ENV":                "test",
			"LOG_LEVEL":          "info",
			"LOG_FORMAT":         "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupTeamContainerWithDefaultRateLimits starts the team service with the
// production rate limit profiles. Only the rate limit tests should use this.
func setupTeamContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TEAM_DATABASE_FILE": "/tmp/team.db",
			"ENV":                "test",
			"LOG_LEVEL":          "info",
			"LOG_FORMAT":         "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newUserID mints an actor ID for a test persona.
func newUserID() string {
	return idx.New().String()
}

// createProject creates a project owned by a fresh user and returns the
// project and the owner's actor client.
func createProject(t *testing.T, client *teamsdk.Client) (*teamsdk.ProjectResponse, *teamsdk.ActorClient) {
	t.Helper()

	owner := client.AsActor(newUserID())
	project, err := owner.CreateProject(t.Context(), teamsdk.CreateProjectRequest{
		CompanyID:   "company-e2e",
		Number:      "P-2207",
		Name:        "Harbour Bridge Retrofit",
		Description: "Structural retrofit works",
		Status:      "active",
		OwnerEmail:  ownerEmail,
	})
	require.NoError(t, err)
	require.NotNil(t, project)

	return project, owner
}

// inviteAndAccept runs the full invitation flow: the inviter mints an invite
// for the email and a fresh user accepts it. Returns the new member's client.
func inviteAndAccept(t *testing.T, client *teamsdk.Client, inviter *teamsdk.ActorClient, projectID, email, role string) *teamsdk.ActorClient {
	t.Helper()

	invite, err := inviter.Invite(t.Context(), projectID, teamsdk.InviteRequest{
		Email: email,
		Role:  role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, invite.InviteToken)

	member := client.AsActor(newUserID())
	membership, err := member.AcceptInvitation(t.Context(), invite.InviteToken)
	require.NoError(t, err)
	require.Equal(t, "active", membership.Status)
	require.Equal(t, role, membership.Role)

	return member
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	require.Error(t, err)
	var apiErr *teamsdk.APIError
	require.ErrorAs(t, err, &apiErr, "expected *teamsdk.APIError, got %T: %v", err, err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
