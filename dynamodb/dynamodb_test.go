package dynamodb_test

import (
	"context"
	"fmt"
	"testing"

	"moviecatalog/dynamodb"
	"moviecatalog/store/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNewClient_Error(t *testing.T) {
	t.Run("region is required", func(t *testing.T) {
		_, err := dynamodb.NewClient(context.Background(), dynamodb.Options{})
		assert.EqualError(t, err, "dynamodb: region is required")
	})

	t.Run("keys must be set together", func(t *testing.T) {
		_, err := dynamodb.NewClient(context.Background(), dynamodb.Options{Region: "us-east-1", AccessKey: "key"})
		assert.EqualError(t, err, "dynamodb: access key and secret key must be set together")
	})
}

func TestRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	endpoint := SetupDynamoDBContainer(t)
	client, err := dynamodb.NewClient(context.Background(), dynamodb.Options{
		Region:    "us-east-1",
		Endpoint:  endpoint,
		AccessKey: "local",
		SecretKey: "local",
	})
	require.NoError(t, err)

	storetest.RunRepositoryTests(t, func(t *testing.T) storetest.Stores {
		// fresh tables per test keep the cases isolated
		suffix := uuid.NewString()[:8]
		movies, categories := "movies-"+suffix, "categories-"+suffix
		require.NoError(t, dynamodb.EnsureTables(context.Background(), client, movies, categories))
		require.NoError(t, dynamodb.Ping(context.Background(), client, movies))

		return storetest.Stores{
			Movies:     dynamodb.NewMovieRepository(client, movies),
			Categories: dynamodb.NewCategoryRepository(client, categories),
			UnknownID:  uuid.NewString(),
		}
	})
}

func SetupDynamoDBContainer(t testing.TB) string {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.2.1",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, container.Terminate(ctx))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8000")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, port.Port())
}
