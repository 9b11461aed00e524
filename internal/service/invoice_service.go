package service

import (
	"context"
	"errors"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// InvoiceService интерфейс сервиса для работы со счетами
type InvoiceService interface {
	BuildForCustomer(ctx context.Context, customerID int64) (domain.Invoice, error)
}

type invoiceService struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	log          *logger.Logger
}

// NewInvoiceService создает новый сервис для работы со счетами
func NewInvoiceService(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	log *logger.Logger,
) InvoiceService {
	return &invoiceService{
		customerRepo: customerRepo,
		txRepo:       txRepo,
		log:          log,
	}
}

// BuildForCustomer собирает счет из снимка клиента и его сохраненных
// операций с пересчитанным итогом
func (s *invoiceService) BuildForCustomer(ctx context.Context, customerID int64) (domain.Invoice, error) {
	s.log.Debug("Building invoice for customer: %d", customerID)

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Invoice{}, domain.NewNotFoundError("Customer", customerID)
		}
		return domain.Invoice{}, err
	}

	transactions, err := s.txRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice := domain.Invoice{
		ID:           customer.ID,
		Customer:     customer,
		Transactions: transactions,
	}
	invoice.Total = invoice.ComputeTotal()

	return invoice, nil
}
