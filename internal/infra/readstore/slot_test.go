//go:build unit

package readstore

import (
	"context"
	"testing"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/infra"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotReadQueries struct {
	mock.Mock
}

func (m *MockSlotReadQueries) ListHorariosOcupados(ctx context.Context, db sqlc.DBTX, data string) ([]sqlc.ListHorariosOcupadosRow, error) {
	args := m.Called(ctx, db, data)
	return args.Get(0).([]sqlc.ListHorariosOcupadosRow), args.Error(1)
}

func TestSlotReadStore_OccupiedSlots(t *testing.T) {
	date, err := appointment.ParseDate("2025-11-10")
	require.NoError(t, err)

	t.Run("rows mapped to slots", func(t *testing.T) {
		db := &mockDBTX{}
		mockQueries := new(MockSlotReadQueries)
		mockQueries.On("ListHorariosOcupados", mock.Anything, db, "2025-11-10").Return([]sqlc.ListHorariosOcupadosRow{
			{Hora: pgconv.MicrosToPgtype(9 * 3600 * 1e6), Nome: "Ana Silva", Servico: "Corte"},
			{Hora: pgconv.MicrosToPgtype((14*3600 + 30*60) * 1e6), Nome: "Bruno Costa", Servico: "Barba"},
		}, nil)

		slots, err := NewSlotReadStore(mockQueries, db).OccupiedSlots(context.Background(), date)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Time.String())
		assert.Equal(t, "Ana Silva", slots[0].ClientName)
		assert.Equal(t, "14:30", slots[1].Time.String())
		assert.Equal(t, "Barba", slots[1].Service)
		mockQueries.AssertExpectations(t)
	})

	t.Run("no rows is an empty list", func(t *testing.T) {
		mockQueries := new(MockSlotReadQueries)
		mockQueries.On("ListHorariosOcupados", mock.Anything, mock.Anything, "2025-11-10").
			Return([]sqlc.ListHorariosOcupadosRow{}, nil)

		slots, err := NewSlotReadStore(mockQueries, &mockDBTX{}).OccupiedSlots(context.Background(), date)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("impossible date reported as invalid value", func(t *testing.T) {
		bad, err := appointment.ParseDate("2025-02-30")
		require.NoError(t, err)

		mockQueries := new(MockSlotReadQueries)
		mockQueries.On("ListHorariosOcupados", mock.Anything, mock.Anything, "2025-02-30").
			Return([]sqlc.ListHorariosOcupadosRow(nil), &pgconn.PgError{Code: pgconv.CodeDatetimeFieldOverflow})

		_, err = NewSlotReadStore(mockQueries, &mockDBTX{}).OccupiedSlots(context.Background(), bad)
		assert.True(t, infra.IsKind(err, infra.KindInvalidValue))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
