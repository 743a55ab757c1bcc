package sale

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	rollbackTransaction  = "transaction"
	rollbackCompensation = "compensation"
)

type Metrics struct {
	Created          prometheus.Counter
	Failed           *prometheus.CounterVec
	Rollbacks        *prometheus.CounterVec
	RollbackFailures prometheus.Counter
}

// NewMetrics registers the sale counters on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Created: f.NewCounter(prometheus.CounterOpts{
			Name: "erp_sales_created_total",
			Help: "Sales persisted with all of their items.",
		}),
		Failed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "erp_sale_create_failures_total",
			Help: "Sale creations that failed, by step.",
		}, []string{"step"}),
		Rollbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "erp_sale_rollbacks_total",
			Help: "Sale headers undone after an item insert failed, by mechanism.",
		}, []string{"mechanism"}),
		RollbackFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "erp_sale_rollback_failures_total",
			Help: "Compensating deletes that failed and left a sale without items.",
		}),
	}
}
