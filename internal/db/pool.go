package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	TracingEnabled bool
	// MetricsRegistry, when set, gets a pgxpool stats collector registered
	MetricsRegistry prometheus.Registerer
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	user := params.DBUser
	if user == "" {
		user = "postgres"
	}
	dsn := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", params.DBHost, params.DBPort),
		Path:   params.DBName,
	}
	if params.DBPassword != "" {
		dsn.User = url.UserPassword(user, params.DBPassword)
	} else {
		dsn.User = url.User(user)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn.String())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if params.MetricsRegistry != nil {
		collector := pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": params.DBName})
		if err := params.MetricsRegistry.Register(collector); err != nil {
			pool.Close()
			return nil, fmt.Errorf("register pool collector: %w", err)
		}
	}

	return pool, nil
}
