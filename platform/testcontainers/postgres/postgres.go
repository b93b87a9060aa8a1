package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	tcconst "github.com/you-humble/btg-configurator/platform/testcontainers"
)

const (
	postgresPort           = tcconst.PostgresPort
	postgresStartupTimeout = 1 * time.Minute
)

// Container is a throwaway PostgreSQL instance with a connected pool.
type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	runOpts := []tc.ContainerCustomizer{
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		tc.WithWaitStrategy(
			wait.ForListeningPort(postgresPort + "/tcp").WithStartupTimeout(postgresStartupTimeout),
		),
		tc.WithHostConfigModifier(defaultHostConfig()),
		withName(cfg.ContainerName),
	}
	if cfg.NetworkName != "" {
		runOpts = append(runOpts, withNetwork(cfg.NetworkName, "postgres"))
	}

	container, err := tcpostgres.Run(ctx, cfg.ImageName, runOpts...)
	if err != nil {
		return nil, errors.Errorf("failed to start postgres container: %v", err)
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
			}
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Errorf("failed to build connection string: %v", err)
	}

	pool, err := connectPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Postgres container started", zap.String("dsn", dsn))
	success = true

	return &Container{
		container: container,
		pool:      pool,
		dsn:       dsn,
		cfg:       cfg,
	}, nil
}

func (c *Container) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Container) Config() *Config {
	return c.cfg
}

// DSN is the connection string reachable from the test process.
func (c *Container) DSN() string {
	return c.dsn
}

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}

func withName(name string) tc.CustomizeRequestOption {
	return func(req *tc.GenericContainerRequest) error {
		req.Name = name
		return nil
	}
}

func withNetwork(network, alias string) tc.CustomizeRequestOption {
	return func(req *tc.GenericContainerRequest) error {
		req.Networks = append(req.Networks, network)
		if req.NetworkAliases == nil {
			req.NetworkAliases = make(map[string][]string)
		}
		req.NetworkAliases[network] = append(req.NetworkAliases[network], alias)
		return nil
	}
}
