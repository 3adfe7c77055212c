//go:build integration

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

func TestKeyReserver_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: endpoint})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	reserver := NewKeyReserver(client, time.Minute, zerolog.Nop())
	keys := []domain.Key{{Field: "username", Value: "ada"}, {Field: "email", Value: "ada@example.com"}}

	release, err := reserver.Reserve(ctx, domain.ResourceUser, keys)
	require.NoError(t, err)

	_, err = reserver.Reserve(ctx, domain.ResourceUser, keys[1:])
	assert.True(t, errors.Is(err, domain.ErrConflict), "held key must conflict, got %v", err)

	release()

	again, err := reserver.Reserve(ctx, domain.ResourceUser, keys)
	require.NoError(t, err)
	again()
}
