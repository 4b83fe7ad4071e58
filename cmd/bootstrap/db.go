package bootstrap

import (
	"context"

	"agendamento-api/internal/infra/db"
	"agendamento-api/internal/pkg/config"
	"agendamento-api/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RegisterPoolMetrics),
)

// NewDB connects and, unless disabled, brings the schema up to date before
// any request can be served. Failure here aborts startup.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx := context.Background()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RegisterPoolMetrics(cfg config.Config, pool *pgxpool.Pool) error {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.RegisterPoolCollector(prometheus.DefaultRegisterer, pool)
}
