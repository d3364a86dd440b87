package postgre

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"meetbot/internal/meeting/repository"
	"meetbot/pkg/log"
	"meetbot/pkg/postgres"
)

type implRepository struct {
	db      postgres.DBInstance
	q       postgres.Querier
	l       log.Logger
	tracer  trace.Tracer
	metrics *storeMetrics
}

// New creates a PostgreSQL-backed Repository for the meeting domain.
func New(db postgres.DBInstance, l log.Logger) repository.Repository {
	if db == nil {
		panic("meeting/repository/postgre: db is required")
	}
	return &implRepository{
		db:      db,
		q:       db,
		l:       l,
		tracer:  otel.GetTracerProvider().Tracer(meterName),
		metrics: newStoreMetrics(otel.Meter(meterName)),
	}
}

// withQuerier returns a copy bound to q, used to run statements inside a transaction.
func (r *implRepository) withQuerier(q postgres.Querier) *implRepository {
	cp := *r
	cp.q = q
	return &cp
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("meeting/repository/postgre.%s", method)
}
