package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// TransactionRepository интерфейс для работы с операциями клиентов
type TransactionRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]domain.Transaction, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error)
	Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	DeleteByCustomer(ctx context.Context, customerID int64) error
}

// InMemoryTransactionRepository реализация репозитория в памяти
type InMemoryTransactionRepository struct {
	transactions map[int64]domain.Transaction
	nextID       int64
	mutex        sync.RWMutex
	log          *logger.Logger
}

// NewInMemoryTransactionRepository создает новый репозиторий операций в памяти
func NewInMemoryTransactionRepository(log *logger.Logger) *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{
		transactions: make(map[int64]domain.Transaction),
		nextID:       1,
		log:          log,
	}
}

// GetAll возвращает операции в порядке создания с учетом skip и limit
func (r *InMemoryTransactionRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.Transaction, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	transactions := make([]domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		transactions = append(transactions, tx)
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].ID < transactions[j].ID
	})

	return paginate(transactions, skip, limit), nil
}

// GetByCustomer возвращает все операции клиента в порядке создания
func (r *InMemoryTransactionRepository) GetByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	transactions := make([]domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.CustomerID == customerID {
			transactions = append(transactions, tx)
		}
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].ID < transactions[j].ID
	})

	return transactions, nil
}

// Create создает новую операцию и присваивает ей идентификатор
func (r *InMemoryTransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	transaction.ID = r.nextID
	r.nextID++

	transaction.CreatedAt = time.Now()

	r.transactions[transaction.ID] = transaction

	return transaction, nil
}

// DeleteByCustomer удаляет все операции клиента
func (r *InMemoryTransactionRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, tx := range r.transactions {
		if tx.CustomerID == customerID {
			delete(r.transactions, id)
		}
	}

	return nil
}
