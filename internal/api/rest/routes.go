package rest

import (
	"github.com/Dhoini/Customer-microservice/config"
	"github.com/Dhoini/Customer-microservice/internal/api/rest/handlers"
	"github.com/Dhoini/Customer-microservice/internal/api/rest/middleware"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers собирает обработчики всех маршрутов сервиса
type Handlers struct {
	Customer     *handlers.CustomerHandler
	Transaction  *handlers.TransactionHandler
	Plan         *handlers.PlanHandler
	Subscription *handlers.SubscriptionHandler
	Invoice      *handlers.InvoiceHandler
}

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(log *logger.Logger, registry *prometheus.Registry, cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	// Корневой маршрут закрыт basic-auth, остальные открыты
	r.GET("/", gin.BasicAuth(gin.Accounts{cfg.Auth.Username: cfg.Auth.Password}), handlers.Root)

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Текущее время по ISO-коду страны
	r.GET("/time/:iso_code", handlers.CurrentTime)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Клиенты и их подписки
	customers := r.Group("/customers")
	{
		customers.GET("", h.Customer.GetCustomers)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.POST("", h.Customer.CreateCustomer)
		customers.PATCH("/:id", h.Customer.UpdateCustomer)
		customers.DELETE("/:id", h.Customer.DeleteCustomer)

		customers.POST("/:id/plans/:plan_id", h.Subscription.SubscribeCustomer)
		customers.GET("/:id/plans", h.Subscription.GetCustomerPlans)

		customers.GET("/:id/invoice", h.Invoice.GetCustomerInvoice)
	}

	// Операции
	transactions := r.Group("/transactions")
	{
		transactions.GET("", h.Transaction.GetTransactions)
		transactions.POST("", h.Transaction.CreateTransaction)
	}

	// Тарифные планы
	plans := r.Group("/plans")
	{
		plans.GET("", h.Plan.GetPlans)
		plans.POST("", h.Plan.CreatePlan)
	}

	// Счета
	invoices := r.Group("/invoices")
	{
		invoices.POST("", h.Invoice.CreateInvoice)
	}

	return r
}
