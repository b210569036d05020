package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/depmap/pkg/depmap"
)

const (
	// DefaultMaxConns is one: every run is a single synchronous session.
	DefaultMaxConns = 1

	// DefaultConnectTimeout applies when the connection string sets none.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultAppName is reported to the server in pg_stat_activity.
	DefaultAppName = "depmap"
)

func configurePool(poolConfig *pgxpool.Config, logger depmap.Logger) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = 0
	if poolConfig.ConnConfig.ConnectTimeout == 0 {
		poolConfig.ConnConfig.ConnectTimeout = DefaultConnectTimeout
	}
	if _, ok := poolConfig.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = DefaultAppName
	}
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		logger.Verbose("%s: %s", notice.Severity, notice.Message)
	}
}

// Connect opens a pool to the database described by cfg and checks it with a
// ping. There is exactly one attempt; failures wrap depmap.ErrConnectionFailed.
func Connect(ctx context.Context, cfg *depmap.ConnectionConfig, logger depmap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", depmap.ErrInvalidConfig)
	}
	configurePool(poolConfig, logger)

	logger.Verbose("Connecting to %s", cfg)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, cfg)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, cfg)
	}
	return pool, nil
}

// wrapConnectionError adds a hint for the common causes of a failed connection.
func wrapConnectionError(err error, cfg *depmap.ConnectionConfig) error {
	errStr := strings.ToLower(err.Error())

	var hint string
	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		hint = fmt.Sprintf("connection refused to %s; is PostgreSQL running? (pg_isready -h %s -p %d)",
			cfg.Address(), cfg.Host, cfg.Port)
	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		hint = fmt.Sprintf("cannot resolve host %q", cfg.Host)
	case strings.Contains(errStr, "password authentication failed"):
		hint = fmt.Sprintf("password authentication failed for user %q on database %q", cfg.Username, cfg.Database)
	case strings.Contains(errStr, "does not exist"):
		hint = fmt.Sprintf("database %q does not exist; create it with: createdb %s", cfg.Database, cfg.Database)
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		hint = fmt.Sprintf("connection timed out to %s", cfg.Address())
	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		hint = "SSL/TLS negotiation failed; check sslmode in the connection string"
	default:
		hint = fmt.Sprintf("failed to connect to %s", cfg)
	}

	return fmt.Errorf("%w: %s: %w", depmap.ErrConnectionFailed, hint, err)
}
