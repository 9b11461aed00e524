package service

import (
	"context"
	"errors"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/events"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// TransactionService интерфейс сервиса для работы с операциями
type TransactionService interface {
	GetAll(ctx context.Context, skip, limit int) ([]domain.Transaction, error)
	Create(ctx context.Context, req domain.TransactionCreate) (domain.Transaction, error)
}

type transactionService struct {
	repo         repository.TransactionRepository
	customerRepo repository.CustomerRepository
	producer     events.Producer
	metrics      metrics.EntityMetrics
	log          *logger.Logger
}

// NewTransactionService создает новый сервис для работы с операциями
func NewTransactionService(
	repo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	producer events.Producer,
	m metrics.EntityMetrics,
	log *logger.Logger,
) TransactionService {
	return &transactionService{
		repo:         repo,
		customerRepo: customerRepo,
		producer:     producer,
		metrics:      m,
		log:          log,
	}
}

func (s *transactionService) GetAll(ctx context.Context, skip, limit int) ([]domain.Transaction, error) {
	s.log.Debug("Getting transactions: skip=%d limit=%d", skip, limit)
	return s.repo.GetAll(ctx, skip, limit)
}

func (s *transactionService) Create(ctx context.Context, req domain.TransactionCreate) (domain.Transaction, error) {
	s.log.Debug("Creating transaction for customer: %d", req.CustomerID)

	// Клиент должен существовать до любой мутации
	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Transaction{}, domain.NewNotFoundError("Customer", req.CustomerID)
		}
		return domain.Transaction{}, err
	}

	transaction := domain.Transaction{
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	created, err := s.repo.Create(ctx, transaction)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Transaction{}, domain.NewNotFoundError("Customer", req.CustomerID)
		}
		return domain.Transaction{}, err
	}

	s.metrics.IncTransactionCreated()
	s.metrics.ObserveTransactionAmount(created.Amount.InexactFloat64())

	if err := s.producer.PublishTransactionCreated(ctx, created); err != nil {
		s.log.Warn("Failed to publish transaction.created event: %v", err)
	}

	return created, nil
}
