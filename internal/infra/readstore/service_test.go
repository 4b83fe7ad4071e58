//go:build unit

package readstore

import (
	"context"
	"testing"

	"agendamento-api/internal/infra"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceReadQueries struct {
	mock.Mock
}

func (m *MockServiceReadQueries) ListServicos(ctx context.Context, db sqlc.DBTX) ([]sqlc.Servico, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Servico), args.Error(1)
}

func (m *MockServiceReadQueries) GetServicoByNome(ctx context.Context, db sqlc.DBTX, nome string) (sqlc.Servico, error) {
	args := m.Called(ctx, db, nome)
	return args.Get(0).(sqlc.Servico), args.Error(1)
}

func TestServiceReadStore_List(t *testing.T) {
	t.Run("maps rows in id order", func(t *testing.T) {
		mockQueries := new(MockServiceReadQueries)
		mockQueries.On("ListServicos", mock.Anything, mock.Anything).Return(builder.BuildServiceRows(), nil)

		views, err := NewServiceReadStore(mockQueries, &mockDBTX{}).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, builder.BuildServiceViews(), views)
		mockQueries.AssertExpectations(t)
	})

	t.Run("empty catalog is an empty list", func(t *testing.T) {
		mockQueries := new(MockServiceReadQueries)
		mockQueries.On("ListServicos", mock.Anything, mock.Anything).Return([]sqlc.Servico{}, nil)

		views, err := NewServiceReadStore(mockQueries, &mockDBTX{}).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockServiceReadQueries)
		mockQueries.On("ListServicos", mock.Anything, mock.Anything).Return([]sqlc.Servico(nil), assert.AnError)

		views, err := NewServiceReadStore(mockQueries, &mockDBTX{}).List(context.Background())
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestServiceReadStore_FindByName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		mockReturn sqlc.Servico
		mockError  error
		wantName   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - canonical name returned",
			input:      "corte",
			mockReturn: sqlc.Servico{IDServico: 1, NomeServico: "Corte"},
			wantName:   "Corte",
		},
		{
			name:      "service not found",
			input:     "Massagem",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			input:     "Corte",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockServiceReadQueries)
			mockQueries.On("GetServicoByNome", mock.Anything, mock.Anything, tt.input).Return(tt.mockReturn, tt.mockError)

			view, err := NewServiceReadStore(mockQueries, &mockDBTX{}).FindByName(context.Background(), tt.input)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, view.NomeServico)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
