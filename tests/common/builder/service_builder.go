//go:build unit || e2e

package builder

import (
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/usecase/queries"
)

// DefaultServices is the catalog seeded by the initial migration, in id order.
var DefaultServices = []string{"Corte", "Barba", "Corte e Barba", "Coloração", "Escova", "Manicure"}

func BuildServiceRows() []sqlc.Servico {
	rows := make([]sqlc.Servico, 0, len(DefaultServices))
	for i, name := range DefaultServices {
		rows = append(rows, sqlc.Servico{IDServico: int32(i + 1), NomeServico: name})
	}
	return rows
}

func BuildServiceViews() []queries.ServiceView {
	views := make([]queries.ServiceView, 0, len(DefaultServices))
	for i, name := range DefaultServices {
		views = append(views, queries.ServiceView{IDServico: int32(i + 1), NomeServico: name})
	}
	return views
}
