package testutils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MinioEndpoint is the address and root credentials of a test MinIO server.
type MinioEndpoint struct {
	Addr      string
	AccessKey string
	SecretKey string
}

func SetupMinioForIntegration() (MinioEndpoint, func()) {
	ctx := context.Background()
	ep := MinioEndpoint{AccessKey: "minioadmin", SecretKey: "minioadmin"}

	req := testcontainers.ContainerRequest{
		Image: "minio/minio:latest",
		Cmd:   []string{"server", "/data"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     ep.AccessKey,
			"MINIO_ROOT_PASSWORD": ep.SecretKey,
		},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := c.MappedPort(ctx, "9000")
	if err != nil {
		log.Fatal(err)
	}
	ep.Addr = fmt.Sprintf("%s:%s", host, port.Port())
	return ep, func() { _ = c.Terminate(ctx) }
}
