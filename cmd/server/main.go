package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhoini/Customer-microservice/config"
	"github.com/Dhoini/Customer-microservice/internal/api/rest"
	"github.com/Dhoini/Customer-microservice/internal/api/rest/handlers"
	"github.com/Dhoini/Customer-microservice/internal/events"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository/postgres"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var log *logger.Logger

func init() {
	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		// Пропускаем ошибку, если .env файл не найден
	}

	log = logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL")))
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	entityMetrics := metrics.NewEntityMetrics(promRegistry, log)
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)

	// Запускаем сбор системных метрик
	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Подключение к базе данных
	dbPool, err := postgres.NewConnection(ctx, cfg.Database.GetDSN(), log)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := postgres.Migrate(ctx, dbPool, log); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}

	// Инициализация продюсера событий
	var producer events.Producer = events.NoopProducer{}
	if cfg.Kafka.Enabled {
		saramaProducer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, events.NewSaramaConfig())
		if err != nil {
			log.Fatal("Failed to create Kafka producer: %v", err)
		}
		producer = events.NewKafkaProducer(saramaProducer, log)
	}
	defer producer.Close()

	// Репозитории
	customerRepo := postgres.NewPostgresCustomerRepository(dbPool, log)
	transactionRepo := postgres.NewPostgresTransactionRepository(dbPool, log)
	planRepo := postgres.NewPostgresPlanRepository(dbPool, log)
	subscriptionRepo := postgres.NewPostgresSubscriptionRepository(dbPool, log)

	// Сервисы
	customerService := service.NewCustomerService(customerRepo, transactionRepo, subscriptionRepo, producer, entityMetrics, log)
	transactionService := service.NewTransactionService(transactionRepo, customerRepo, producer, entityMetrics, log)
	planService := service.NewPlanService(planRepo, entityMetrics, log)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, customerRepo, planRepo, producer, entityMetrics, log)
	invoiceService := service.NewInvoiceService(customerRepo, transactionRepo, log)

	// Установка режима Gin
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Настройка маршрутизатора
	router := rest.SetupRouter(log, promRegistry, cfg, rest.Handlers{
		Customer:     handlers.NewCustomerHandler(customerService, log),
		Transaction:  handlers.NewTransactionHandler(transactionService, log),
		Plan:         handlers.NewPlanHandler(planService, log),
		Subscription: handlers.NewSubscriptionHandler(subscriptionService, log),
		Invoice:      handlers.NewInvoiceHandler(invoiceService, log),
	})

	// Создание и запуск HTTP сервера
	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
