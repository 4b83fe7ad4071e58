package readstore

import (
	"context"

	"agendamento-api/internal/infra"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/pkg/pgconv"
	"agendamento-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceReadQueries interface {
	ListServicos(ctx context.Context, db sqlc.DBTX) ([]sqlc.Servico, error)
	GetServicoByNome(ctx context.Context, db sqlc.DBTX, nome string) (sqlc.Servico, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

// List returns the whole catalog ordered by id.
func (r *ServiceReadStore) List(ctx context.Context) ([]queries.ServiceView, error) {
	rows, err := r.queries.ListServicos(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}

	views := make([]queries.ServiceView, 0, len(rows))
	if err := copier.Copy(&views, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map services", err)
	}
	return views, nil
}

// FindByName matches case-insensitively and returns the canonical catalog name.
func (r *ServiceReadStore) FindByName(ctx context.Context, name string) (*queries.ServiceView, error) {
	row, err := r.queries.GetServicoByNome(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by name", err)
	}

	return &queries.ServiceView{
		IDServico:   row.IDServico,
		NomeServico: row.NomeServico,
	}, nil
}
