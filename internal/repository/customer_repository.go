package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// CustomerRepository интерфейс для работы с клиентами
type CustomerRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// InMemoryCustomerRepository реализация репозитория в памяти
type InMemoryCustomerRepository struct {
	customers map[int64]domain.Customer
	nextID    int64
	mutex     sync.RWMutex
	log       *logger.Logger
}

// NewInMemoryCustomerRepository создает новый репозиторий клиентов в памяти
func NewInMemoryCustomerRepository(log *logger.Logger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[int64]domain.Customer),
		nextID:    1,
		log:       log,
	}
}

// GetAll возвращает клиентов в порядке создания с учетом skip и limit
func (r *InMemoryCustomerRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customers := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}

	// Идентификаторы монотонные, сортировка по ID дает порядок вставки
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].ID < customers[j].ID
	})

	return paginate(customers, skip, limit), nil
}

// GetByID возвращает клиента по ID
func (r *InMemoryCustomerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	return customer, nil
}

// Create создает нового клиента и присваивает ему идентификатор
func (r *InMemoryCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	customer.ID = r.nextID
	r.nextID++

	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	r.customers[customer.ID] = customer

	return customer, nil
}

// Update обновляет существующего клиента
func (r *InMemoryCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.customers[customer.ID]
	if !exists {
		return ErrNotFound
	}

	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now()

	r.customers[customer.ID] = customer

	return nil
}

// Delete удаляет клиента
func (r *InMemoryCustomerRepository) Delete(ctx context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.customers[id]; !exists {
		return ErrNotFound
	}

	delete(r.customers, id)

	return nil
}
