package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linen_orders_created_total",
		Help: "Total number of orders successfully created, by order type.",
	},
		[]string{"order_type"},
	)

	OrdersUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linen_orders_updated_total",
		Help: "Total number of orders successfully updated.",
	})

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linen_orders_completed_total",
		Help: "Total number of orders recorded as completed.",
	})

	RejectionsFiledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linen_rejections_filed_total",
		Help: "Total number of rejection requests filed against delivered items.",
	})

	RejectionsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linen_rejections_deleted_total",
		Help: "Total number of rejection requests deleted.",
	})

	ReservationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linen_reservations_total",
		Help: "Total number of batch inventory reservations submitted.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linen_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	OrderCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "linen_order_cache_items",
		Help: "Current number of items in the order cache.",
	})
)
