package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// InitDockerCompose starts the pgvector database used by the postgres cache backend
// and exports its address as DB_HOST and DB_PORT.
type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}

	postgres, err := i.compose.ServiceContainer(ctx, "postgres")
	if err != nil {
		return ctx, fmt.Errorf("failed to find postgres container: %w", err)
	}
	host, err := postgres.Host(ctx)
	if err != nil {
		return ctx, err
	}
	port, err := postgres.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return ctx, err
	}

	os.Setenv("DB_HOST", host)        //nolint:errcheck
	os.Setenv("DB_PORT", port.Port()) //nolint:errcheck
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	os.Unsetenv("DB_HOST") //nolint:errcheck
	os.Unsetenv("DB_PORT") //nolint:errcheck

	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}
