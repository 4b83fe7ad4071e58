package readstore

import (
	"context"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/infra"
	"agendamento-api/internal/infra/repository/converter"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
)

type SlotReadQueries interface {
	ListHorariosOcupados(ctx context.Context, db sqlc.DBTX, data string) ([]sqlc.ListHorariosOcupadosRow, error)
}

// SlotReadStore reads the occupied slots of a date through whatever handle it
// was built with: the pool for queries, the open transaction for bookings.
type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) OccupiedSlots(ctx context.Context, date appointment.Date) ([]appointment.OccupiedSlot, error) {
	rows, err := r.queries.ListHorariosOcupados(ctx, r.db, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}

	slots := make([]appointment.OccupiedSlot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, converter.OccupiedSlotFromRow(row))
	}
	return slots, nil
}
