package readstore

import (
	"context"

	"agendamento-api/internal/infra"
	"agendamento-api/internal/infra/repository/converter"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/usecase/queries"
)

type AppointmentReadQueries interface {
	ListAgendamentosRecentes(ctx context.Context, db sqlc.DBTX, lim int32) ([]sqlc.Agendamento, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

// ListRecent returns up to limit appointments, latest slot first.
func (r *AppointmentReadStore) ListRecent(ctx context.Context, limit int32) ([]queries.AppointmentView, error) {
	rows, err := r.queries.ListAgendamentosRecentes(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	views := make([]queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		a, err := converter.AppointmentFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map appointment", err)
		}
		views = append(views, queries.NewAppointmentView(a))
	}
	return views, nil
}
