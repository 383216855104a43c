// Package testutils starts the backing services used by the integration suite.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 60 * time.Second

// Service is a running dependency and the address tests connect to.
type Service struct {
	Address   string
	Terminate func()
}

// StartPostgres returns a DSN for an empty database. TEST_DB_DSN skips the container.
func StartPostgres(ctx context.Context) (Service, error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return Service{Address: dsn, Terminate: func() {}}, waitForPostgres(dsn)
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "portal",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		},
		Started: true,
	})
	if err != nil {
		return Service{}, fmt.Errorf("start postgres: %w", err)
	}
	svc := Service{Terminate: func() { _ = pg.Terminate(context.Background()) }}

	endpoint, err := pg.Endpoint(ctx, "")
	if err != nil {
		svc.Terminate()
		return Service{}, err
	}
	svc.Address = fmt.Sprintf("postgres://test:test@%s/portal?sslmode=disable", endpoint)
	if err := waitForPostgres(svc.Address); err != nil {
		svc.Terminate()
		return Service{}, err
	}
	return svc, nil
}

func waitForPostgres(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("postgres not reachable: %w", err)
}

// StartRedis returns a host:port for a fresh redis. TEST_REDIS_ADDRESS skips the container.
func StartRedis(ctx context.Context) (Service, error) {
	if addr := os.Getenv("TEST_REDIS_ADDRESS"); addr != "" {
		return Service{Address: addr, Terminate: func() {}}, nil
	}
	return startGeneric(ctx, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(startupTimeout),
	})
}

// MinioCredentials match the root user StartMinio configures.
const (
	MinioAccessKey = "minioadmin"
	MinioSecretKey = "minioadmin"
)

// StartMinio returns a host:port for a fresh S3 compatible store.
func StartMinio(ctx context.Context) (Service, error) {
	return startGeneric(ctx, testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		Cmd:          []string{"server", "/data"},
		Env:          map[string]string{"MINIO_ROOT_USER": MinioAccessKey, "MINIO_ROOT_PASSWORD": MinioSecretKey},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(startupTimeout),
	})
}

func startGeneric(ctx context.Context, req testcontainers.ContainerRequest) (Service, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return Service{}, fmt.Errorf("start %s: %w", req.Image, err)
	}
	svc := Service{Terminate: func() { _ = c.Terminate(context.Background()) }}
	endpoint, err := c.Endpoint(ctx, "")
	if err != nil {
		svc.Terminate()
		return Service{}, err
	}
	svc.Address = endpoint
	return svc, nil
}
