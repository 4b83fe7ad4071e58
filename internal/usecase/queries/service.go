package queries

import "context"

//go:generate mockgen -source=service.go -destination=../../../tests/mock/queries/service.go -package=queriesmock

type ServiceReadStore interface {
	List(ctx context.Context) ([]ServiceView, error)
}

type ServiceQueries interface {
	List(ctx context.Context) ([]ServiceView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]ServiceView, error) {
	return q.store.List(ctx)
}
