package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"indywinners/config"

	pgxzerolog "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

const pingTimeout = 5 * time.Second

// DSN builds a postgres URL from the database config, escaping credentials.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   cfg.Name,
	}
	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	q := u.Query()
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Open returns a pinged *sql.DB for the configured driver. The pgx driver gets a
// query tracer that writes through logger.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*sql.DB, error) {
	dsn := DSN(cfg)

	var db *sql.DB
	switch cfg.Driver {
	case config.DriverPGX:
		connConfig, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse pgx config: %w", err)
		}
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzerolog.NewLogger(logger.With().Str("component", "pgx").Logger()),
			LogLevel: traceLogLevel(logger.GetLevel()),
		}
		db = stdlib.OpenDB(*connConfig)
	default:
		var err error
		db, err = sql.Open(config.DriverPQ, dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info().
		Str("driver", cfg.Driver).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("db", cfg.Name).
		Msg("connected to postgres")
	return db, nil
}

func traceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch {
	case level <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case level <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case level <= zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case level <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
