package shared

import (
	"context"

	"agendamento-api/internal/domain/appointment"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements relying on the implicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups a command performs inside its own transaction.
type CommandReads interface {
	SlotReader
	ServiceByName(ctx context.Context, name string) (*ServiceSnapshot, error)
}

type SlotReader interface {
	OccupiedSlots(ctx context.Context, date appointment.Date) ([]appointment.OccupiedSlot, error)
}

// Minimal snapshot for command read operations
type ServiceSnapshot struct {
	Name string
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b appointment.NormalizedBooking) (*appointment.Appointment, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int32) (*appointment.Appointment, error)
}
