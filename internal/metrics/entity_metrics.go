package metrics

import (
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EntityMetrics интерфейс для метрик сущностей сервиса
type EntityMetrics interface {
	IncCustomerCreated()
	IncCustomerDeleted()
	IncTransactionCreated()
	ObserveTransactionAmount(amount float64)
	IncPlanCreated()
	IncSubscriptionCreated(status string)
}

type entityMetrics struct {
	log                  *logger.Logger
	customersCreated     prometheus.Counter
	customersDeleted     prometheus.Counter
	transactionsCreated  prometheus.Counter
	transactionAmounts   prometheus.Histogram
	plansCreated         prometheus.Counter
	subscriptionsCreated *prometheus.CounterVec
}

// NewEntityMetrics создает новые метрики сущностей
func NewEntityMetrics(registry *prometheus.Registry, log *logger.Logger) EntityMetrics {
	customersCreated := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "customers_created_total",
			Help: "The total number of created customers",
		},
	)

	customersDeleted := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "customers_deleted_total",
			Help: "The total number of deleted customers",
		},
	)

	transactionsCreated := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "The total number of created transactions",
		},
	)

	transactionAmounts := promauto.With(registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "transaction_amounts",
			Help:    "Transaction amounts distribution",
			Buckets: prometheus.ExponentialBuckets(10, 10, 5), // 10, 100, 1000, 10000, 100000
		},
	)

	plansCreated := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "plans_created_total",
			Help: "The total number of created plans",
		},
	)

	subscriptionsCreated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriptions_created_total",
			Help: "The total number of created subscriptions by status",
		},
		[]string{"status"},
	)

	return &entityMetrics{
		log:                  log,
		customersCreated:     customersCreated,
		customersDeleted:     customersDeleted,
		transactionsCreated:  transactionsCreated,
		transactionAmounts:   transactionAmounts,
		plansCreated:         plansCreated,
		subscriptionsCreated: subscriptionsCreated,
	}
}

// IncCustomerCreated увеличивает счетчик созданных клиентов
func (m *entityMetrics) IncCustomerCreated() {
	m.customersCreated.Inc()
}

// IncCustomerDeleted увеличивает счетчик удаленных клиентов
func (m *entityMetrics) IncCustomerDeleted() {
	m.customersDeleted.Inc()
}

// IncTransactionCreated увеличивает счетчик созданных операций
func (m *entityMetrics) IncTransactionCreated() {
	m.transactionsCreated.Inc()
}

// ObserveTransactionAmount записывает сумму операции
func (m *entityMetrics) ObserveTransactionAmount(amount float64) {
	m.transactionAmounts.Observe(amount)
}

// IncPlanCreated увеличивает счетчик созданных планов
func (m *entityMetrics) IncPlanCreated() {
	m.plansCreated.Inc()
}

// IncSubscriptionCreated увеличивает счетчик созданных подписок
func (m *entityMetrics) IncSubscriptionCreated(status string) {
	m.subscriptionsCreated.WithLabelValues(status).Inc()
}
