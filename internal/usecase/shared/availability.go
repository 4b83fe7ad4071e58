package shared

import (
	"context"

	"agendamento-api/internal/domain/appointment"
)

// AvailabilityResolver answers slot questions for a date. It holds no state;
// the reader decides whether the answer comes from the pool or from an open
// transaction.
type AvailabilityResolver struct{}

func NewAvailabilityResolver() *AvailabilityResolver {
	return &AvailabilityResolver{}
}

// OccupiedSlots returns the taken slots of date sorted ascending by time,
// whatever order the reader produced.
func (r *AvailabilityResolver) OccupiedSlots(ctx context.Context, reader SlotReader, date appointment.Date) ([]appointment.OccupiedSlot, error) {
	slots, err := reader.OccupiedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	appointment.SortByTime(slots)
	return slots, nil
}

// IsOccupied is exact membership: 14:00 does not block 14:30.
func (r *AvailabilityResolver) IsOccupied(ctx context.Context, reader SlotReader, slot appointment.Slot) (bool, error) {
	slots, err := r.OccupiedSlots(ctx, reader, slot.Date)
	if err != nil {
		return false, err
	}
	return appointment.ContainsTime(slots, slot.Time), nil
}
