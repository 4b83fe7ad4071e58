package queries

import (
	"context"

	"agendamento-api/internal/pkg/clock"
)

//go:generate mockgen -source=health.go -destination=../../../tests/mock/queries/health.go -package=queriesmock

const (
	HealthStatusOK      = "ok"
	DatabaseConnected   = "conectado"
	DatabaseUnreachable = "desconectado"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthQueries interface {
	Check(ctx context.Context) (*HealthView, error)
}

type healthQueriesImpl struct {
	db    Pinger
	clock clock.Clock
}

func NewHealthQueries(db Pinger, clk clock.Clock) HealthQueries {
	return &healthQueriesImpl{db: db, clock: clk}
}

func (q *healthQueriesImpl) Check(ctx context.Context) (*HealthView, error) {
	if err := q.db.Ping(ctx); err != nil {
		return nil, err
	}
	return &HealthView{
		Status:    HealthStatusOK,
		Database:  DatabaseConnected,
		Timestamp: q.clock.Now(),
	}, nil
}
